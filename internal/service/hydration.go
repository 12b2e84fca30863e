package service

import (
	"github.com/lenspick/lenspick-backend/internal/domain"
	"github.com/lenspick/lenspick-backend/internal/repository"
)

// layerHydrator assembles hydrated layer read-models for any design kind.
// It batches image/color lookups across a whole page: collect every
// referenced ID, run two range queries, then join in memory.
type layerHydrator struct {
	imageRepo repository.ImageRepository
	colorRepo repository.ColorRepository
}

func newLayerHydrator(imageRepo repository.ImageRepository, colorRepo repository.ColorRepository) *layerHydrator {
	return &layerHydrator{imageRepo: imageRepo, colorRepo: colorRepo}
}

// collect accumulates the image/color IDs of one design's layers
func collectLayerIDs(layers map[string]domain.LayerRef, imageIDs, colorIDs map[uint]bool) {
	for _, ref := range layers {
		if ref.ImageID != nil {
			imageIDs[*ref.ImageID] = true
		}
		if ref.ColorID != nil {
			colorIDs[*ref.ColorID] = true
		}
	}
}

func keys(set map[uint]bool) []uint {
	out := make([]uint, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// lookup is the loaded image/color maps for one hydration pass
type layerLookup struct {
	images map[uint]*domain.Image
	colors map[uint]*domain.Color
}

// load runs the two range queries for every collected ID
func (h *layerHydrator) load(imageIDs, colorIDs map[uint]bool) (*layerLookup, error) {
	images, err := h.imageRepo.FindByIDs(keys(imageIDs))
	if err != nil {
		return nil, err
	}
	colors, err := h.colorRepo.FindByIDs(keys(colorIDs))
	if err != nil {
		return nil, err
	}
	return &layerLookup{images: images, colors: colors}, nil
}

// hydrate assembles the read-model of one design's layers from the lookup
func (l *layerLookup) hydrate(layers map[string]domain.LayerRef) domain.HydratedLayers {
	out := make(domain.HydratedLayers, len(domain.LayerNames))
	for _, name := range domain.LayerNames {
		ref := layers[name]
		hl := domain.HydratedLayer{
			ImageID: ref.ImageID,
			ColorID: ref.ColorID,
			Size:    ref.Size,
			Opacity: ref.Transparency,
		}
		if hl.Size == "" {
			hl.Size = domain.DefaultOpacity
		}
		if hl.Opacity == "" {
			hl.Opacity = domain.DefaultOpacity
		}
		if ref.ImageID != nil {
			if img, ok := l.images[*ref.ImageID]; ok {
				hl.ImageURL = img.URL
				hl.ImageName = img.DisplayName
			}
		}
		if ref.ColorID != nil {
			if col, ok := l.colors[*ref.ColorID]; ok {
				hl.ColorValues = col.RGB()
				hl.ColorName = col.Name
			}
		}
		out[name] = hl
	}
	return out
}

// HydrateOne is the single-design convenience used by detail readers
func (h *layerHydrator) HydrateOne(layers map[string]domain.LayerRef) (domain.HydratedLayers, error) {
	imageIDs := make(map[uint]bool)
	colorIDs := make(map[uint]bool)
	collectLayerIDs(layers, imageIDs, colorIDs)

	lookup, err := h.load(imageIDs, colorIDs)
	if err != nil {
		return nil, err
	}
	return lookup.hydrate(layers), nil
}

// HydrateMany hydrates a page of designs with exactly two range queries
func (h *layerHydrator) HydrateMany(pages []map[string]domain.LayerRef) ([]domain.HydratedLayers, error) {
	imageIDs := make(map[uint]bool)
	colorIDs := make(map[uint]bool)
	for _, layers := range pages {
		collectLayerIDs(layers, imageIDs, colorIDs)
	}

	lookup, err := h.load(imageIDs, colorIDs)
	if err != nil {
		return nil, err
	}

	out := make([]domain.HydratedLayers, len(pages))
	for i, layers := range pages {
		out[i] = lookup.hydrate(layers)
	}
	return out, nil
}
