package product

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/restau-management/internal/apperr"
	"github.com/MikeMC777/restau-management/internal/cache"
	"github.com/MikeMC777/restau-management/internal/storage"
)

// ImageDir is the upload sub-directory and public URL prefix for product images.
const ImageDir = "products"

type ImageStore interface {
	SaveFile(sub string, fh *multipart.FileHeader) (*storage.Stored, error)
	Delete(url string) error
}

type Service struct {
	repo   Repository
	images ImageStore
	cache  cache.Cache
}

func NewService(repo Repository, images ImageStore, c cache.Cache) *Service {
	return &Service{repo: repo, images: images, cache: c}
}

func cacheKey(id uint) string { return fmt.Sprintf("product:%d", id) }

func parsePrice(n json.Number) (decimal.Decimal, error) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return decimal.Zero, apperr.Validation("price is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperr.Validation("invalid price %q", s)
	}
	if d.IsNegative() {
		return decimal.Zero, apperr.Validation("price must not be negative")
	}
	return d.Round(2), nil
}

// apply validates in and copies it onto p, checking that referenced
// category and family exist.
func (s *Service) apply(ctx context.Context, p *Product, in Request) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return apperr.Validation("name is required")
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return err
	}

	var categoryID *uint
	if in.CategoryID != nil && *in.CategoryID != 0 {
		ok, err := s.repo.CategoryExists(ctx, *in.CategoryID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Validation("category %d does not exist", *in.CategoryID)
		}
		id := *in.CategoryID
		categoryID = &id
	}

	var familyID *string
	if fid := strings.TrimSpace(in.FamilyID); fid != "" {
		ok, err := s.repo.FamilyExists(ctx, fid)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Validation("product family %s does not exist", fid)
		}
		familyID = &fid
	}

	p.Name = name
	p.Description = strings.TrimSpace(in.Description)
	p.Price = price
	p.Notes = strings.TrimSpace(in.Notes)
	p.CategoryID = categoryID
	p.FamilyID = familyID
	return nil
}

func setImage(p *Product, st *storage.Stored) {
	p.ImageURL = st.URL
	p.ThumbnailURL = st.ThumbnailURL
	p.OriginalFilename = st.OriginalFilename
	p.FileSize = st.Size
	p.ContentType = st.ContentType
}

// Create persists a product; image may be nil.
func (s *Service) Create(ctx context.Context, in Request, image *multipart.FileHeader) (*Product, error) {
	p := &Product{}
	if err := s.apply(ctx, p, in); err != nil {
		return nil, err
	}
	if image != nil {
		st, err := s.images.SaveFile(ImageDir, image)
		if err != nil {
			return nil, err
		}
		setImage(p, st)
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.dropImage(p.ImageURL)
		return nil, err
	}
	return p, nil
}

// Get reads through the cache.
func (s *Service) Get(ctx context.Context, id uint) (*Product, error) {
	if b, ok := s.cache.Get(ctx, cacheKey(id)); ok {
		var p Product
		if err := json.Unmarshal(b, &p); err == nil {
			return &p, nil
		}
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(p); err == nil {
		s.cache.Set(ctx, cacheKey(id), b)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, f Filter) ([]Product, error) {
	return s.repo.List(ctx, f)
}

// PriceRange lists products priced within [lo, hi].
func (s *Service) PriceRange(ctx context.Context, lo, hi decimal.Decimal) ([]Product, error) {
	if lo.IsNegative() || hi.IsNegative() {
		return nil, apperr.Validation("price bounds must not be negative")
	}
	if lo.GreaterThan(hi) {
		return nil, apperr.Validation("min price %s is greater than max price %s", lo, hi)
	}
	return s.repo.List(ctx, Filter{MinPrice: &lo, MaxPrice: &hi})
}

// Update replaces the product's fields. A new image replaces the stored one.
func (s *Service) Update(ctx context.Context, id uint, in Request, image *multipart.FileHeader) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, p, in); err != nil {
		return nil, err
	}
	oldImage := p.ImageURL
	if image != nil {
		st, err := s.images.SaveFile(ImageDir, image)
		if err != nil {
			return nil, err
		}
		setImage(p, st)
	}
	if err := s.repo.Update(ctx, p); err != nil {
		if image != nil {
			s.dropImage(p.ImageURL)
		}
		return nil, err
	}
	if image != nil {
		s.dropImage(oldImage)
	}
	s.cache.Delete(ctx, cacheKey(id))
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	used, err := s.repo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return apperr.Conflict("cannot delete product %d: order items reference it", id)
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(ctx, cacheKey(id))
	s.dropImage(p.ImageURL)
	return nil
}

func (s *Service) dropImage(url string) {
	if url == "" {
		return
	}
	if err := s.images.Delete(url); err != nil {
		slog.Warn("remove product image", "url", url, "err", err)
	}
}
