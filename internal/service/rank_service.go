package service

import (
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
)

// rankTopN is the daily ranking size
const rankTopN = 10

// StatusTally is one four-way status breakdown with its total
type StatusTally struct {
	Labels map[string]int64 `json:"labels"`
	Total  int64            `json:"total"`
}

// DashboardRank is the manager dashboard read-model: today's top content
// by views plus the two pipeline tallies
type DashboardRank struct {
	TopReleasedProducts []repository.RankedContent `json:"released_products"`
	TopPortfolios       []repository.RankedContent `json:"portfolios"`
	CustomDesigns       StatusTally                `json:"custom_designs"`
	SampleRequests      StatusTally                `json:"progress_status"`
}

// 상태 코드 → 대시보드 라벨
var (
	designTallyLabels = map[string]string{
		domain.DesignStatusDraft:       "wait",
		domain.DesignStatusReject:      "reject",
		domain.DesignStatusUnderReview: "under_review",
		domain.DesignStatusComplete:    "complet",
	}
	progressTallyLabels = map[string]string{
		domain.ProgressWaiting:    "wait",
		domain.ProgressInProgress: "progress",
		domain.ProgressLate:       "delay",
		domain.ProgressShipped:    "delivery_completed",
	}
)

// RankService manager dashboard interface
type RankService interface {
	Dashboard() (*DashboardRank, error)
}

type rankService struct {
	dailyViewRepo repository.DailyViewRepository
	designRepo    repository.CustomDesignRepository
	progressRepo  repository.ProgressRepository
}

// NewRankService creates a new RankService
func NewRankService(
	dailyViewRepo repository.DailyViewRepository,
	designRepo repository.CustomDesignRepository,
	progressRepo repository.ProgressRepository,
) RankService {
	return &rankService{
		dailyViewRepo: dailyViewRepo,
		designRepo:    designRepo,
		progressRepo:  progressRepo,
	}
}

func (s *rankService) Dashboard() (*DashboardRank, error) {
	today := repository.Today()

	products, err := s.dailyViewRepo.TopReleasedProducts(today, rankTopN)
	if err != nil {
		return nil, err
	}
	portfolios, err := s.dailyViewRepo.TopPortfolios(today, rankTopN)
	if err != nil {
		return nil, err
	}

	designCounts, err := s.designRepo.StatusTallies()
	if err != nil {
		return nil, err
	}
	progressCounts, err := s.progressRepo.StatusTallies()
	if err != nil {
		return nil, err
	}

	return &DashboardRank{
		TopReleasedProducts: products,
		TopPortfolios:       portfolios,
		CustomDesigns:       relabel(designCounts, designTallyLabels),
		SampleRequests:      relabel(progressCounts, progressTallyLabels),
	}, nil
}

// relabel maps raw status codes to dashboard labels, filling zeroes for
// absent statuses
func relabel(counts map[string]int64, labels map[string]string) StatusTally {
	tally := StatusTally{Labels: make(map[string]int64, len(labels))}
	for code, label := range labels {
		n := counts[code]
		tally.Labels[label] = n
		tally.Total += n
	}
	return tally
}
