package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lenspick/lenspick-backend/internal/common"
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
	"github.com/lenspick/lenspick-backend/pkg/mailer"
)

// 공유 에러 정의
var (
	ErrShareItemInvalid = errors.New("공유할 디자인을 찾을 수 없습니다")
)

// shareIDLength is the public image id width
const shareIDLength = 12

// ShareService public design-image publication interface
type ShareService interface {
	// Publish returns the share link for (user, item, category),
	// creating the share row on first use and reusing it afterwards.
	// Posted image bytes are uploaded; without them the item's stored
	// main image is reused.
	Publish(ctx context.Context, userID uint, itemName, category, filename, contentType string, data []byte) (*domain.Share, string, error)
	// PublishBase64 uploads a caller-composed image and publishes it
	// under (user, item, category)
	PublishBase64(ctx context.Context, userID uint, itemName, category, contentType, base64Data string) (*domain.Share, string, error)
	// Resolve loads a published share by its public image id
	Resolve(imageID string) (*domain.Share, error)
	// SendMail publishes (or reuses) the share and mails its link
	SendMail(ctx context.Context, userID uint, itemName, category, recipient string) error
	// SendMailForImageID mails the link of an already published share
	SendMailForImageID(ctx context.Context, imageID, recipient string) error
}

type shareService struct {
	shareRepo     repository.ShareRepository
	designRepo    repository.CustomDesignRepository
	portfolioRepo repository.PortfolioRepository
	uploads       UploadService
	mail          mailer.Mailer
	baseURL       string
}

// NewShareService creates a new ShareService. baseURL is the public
// origin the /share/<id> links are built on.
func NewShareService(
	shareRepo repository.ShareRepository,
	designRepo repository.CustomDesignRepository,
	portfolioRepo repository.PortfolioRepository,
	uploads UploadService,
	mail mailer.Mailer,
	baseURL string,
) ShareService {
	return &shareService{
		shareRepo:     shareRepo,
		designRepo:    designRepo,
		portfolioRepo: portfolioRepo,
		uploads:       uploads,
		mail:          mail,
		baseURL:       strings.TrimRight(baseURL, "/"),
	}
}

func (s *shareService) Publish(ctx context.Context, userID uint, itemName, category, filename, contentType string, data []byte) (*domain.Share, string, error) {
	if !domain.ValidCategory(category) || itemName == "" {
		return nil, "", ErrShareItemInvalid
	}

	// 기존 공유 재사용
	share, err := s.shareRepo.Find(userID, itemName, category)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, "", err
	}
	if share != nil {
		return share, s.link(share.ImageID), nil
	}

	var imageURL, objectKey string
	if len(data) > 0 {
		result, err := s.uploads.Upload(ctx, filename, contentType, data)
		if err != nil {
			return nil, "", err
		}
		imageURL, objectKey = result.URL, result.Key
	} else {
		imageURL, objectKey, err = s.resolveImage(userID, itemName, category)
		if err != nil {
			return nil, "", err
		}
	}

	imageID, err := s.newImageID(userID, itemName, category)
	if err != nil {
		return nil, "", err
	}

	share = &domain.Share{
		ImageID:   imageID,
		UserID:    userID,
		ItemName:  itemName,
		Category:  category,
		ImageURL:  imageURL,
		ObjectKey: objectKey,
	}
	if err := s.shareRepo.Create(share); err != nil {
		return nil, "", err
	}
	return share, s.link(imageID), nil
}

// newImageID derives the stable md5-prefix id and falls back to random
// ids while the prefix collides with another share
func (s *shareService) newImageID(userID uint, itemName, category string) (string, error) {
	sum := md5.Sum([]byte(fmt.Sprintf("%d|%s|%s", userID, itemName, category)))
	candidate := hex.EncodeToString(sum[:])[:shareIDLength]

	for {
		taken, err := s.shareRepo.ExistsImageID(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = strings.ReplaceAll(uuid.NewString(), "-", "")[:shareIDLength]
	}
}

func (s *shareService) resolveImage(userID uint, itemName, category string) (string, string, error) {
	switch category {
	case domain.CategoryCustomDesign:
		design, err := s.designRepo.FindByOwnerAndItem(userID, itemName)
		if errors.Is(err, common.ErrNotFound) {
			return "", "", ErrShareItemInvalid
		}
		if err != nil {
			return "", "", err
		}
		return design.MainImageURL, design.ObjectKey, nil
	case domain.CategoryPortfolio:
		portfolio, err := s.portfolioRepo.FindActiveByName(itemName)
		if errors.Is(err, common.ErrNotFound) {
			return "", "", ErrShareItemInvalid
		}
		if err != nil {
			return "", "", err
		}
		return portfolio.MainImageURL, portfolio.ObjectKey, nil
	}
	return "", "", ErrShareItemInvalid
}

func (s *shareService) PublishBase64(ctx context.Context, userID uint, itemName, category, contentType, base64Data string) (*domain.Share, string, error) {
	if !domain.ValidCategory(category) || itemName == "" {
		return nil, "", ErrShareItemInvalid
	}

	share, err := s.shareRepo.Find(userID, itemName, category)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, "", err
	}
	if share != nil {
		return share, s.link(share.ImageID), nil
	}

	result, err := s.uploads.UploadBase64PNG(ctx, contentType, base64Data)
	if err != nil {
		return nil, "", err
	}

	imageID, err := s.newImageID(userID, itemName, category)
	if err != nil {
		return nil, "", err
	}

	share = &domain.Share{
		ImageID:   imageID,
		UserID:    userID,
		ItemName:  itemName,
		Category:  category,
		ImageURL:  result.URL,
		ObjectKey: result.Key,
	}
	if err := s.shareRepo.Create(share); err != nil {
		return nil, "", err
	}
	return share, s.link(imageID), nil
}

func (s *shareService) Resolve(imageID string) (*domain.Share, error) {
	return s.shareRepo.FindByImageID(imageID)
}

func (s *shareService) link(imageID string) string {
	return s.baseURL + "/share/" + imageID
}

func (s *shareService) SendMail(ctx context.Context, userID uint, itemName, category, recipient string) error {
	share, link, err := s.Publish(ctx, userID, itemName, category, "", "", nil)
	if err != nil {
		return err
	}
	return s.mail.Send(ctx, recipient, mailSubject(share.ItemName), mailBody(share.ImageURL, link))
}

func (s *shareService) SendMailForImageID(ctx context.Context, imageID, recipient string) error {
	share, err := s.shareRepo.FindByImageID(imageID)
	if err != nil {
		return err
	}
	return s.mail.Send(ctx, recipient, mailSubject(share.ItemName), mailBody(share.ImageURL, s.link(share.ImageID)))
}

func mailSubject(itemName string) string {
	return fmt.Sprintf("[LensPick] %s 디자인 공유", itemName)
}

// mailBody carries both the raw image URL and the share page link
func mailBody(imageURL, link string) string {
	return fmt.Sprintf("공유된 디자인을 확인하세요.\n\n%s\n%s\n", imageURL, link)
}
