package family

import (
	"context"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"

	"github.com/MikeMC777/restau-management/internal/apperr"
	"github.com/MikeMC777/restau-management/internal/storage"
)

// ImageDir is the upload sub-directory and public URL prefix for family images.
const ImageDir = "product-families"

type ImageStore interface {
	SaveFile(sub string, fh *multipart.FileHeader) (*storage.Stored, error)
	Delete(url string) error
}

type Service struct {
	repo   Repository
	images ImageStore
}

func NewService(repo Repository, images ImageStore) *Service {
	return &Service{repo: repo, images: images}
}

func (s *Service) apply(ctx context.Context, f *Family, in Request) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return apperr.Validation("name is required")
	}
	if in.CategoryID == 0 {
		return apperr.Validation("category_id is required")
	}
	ok, err := s.repo.CategoryExists(ctx, in.CategoryID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Validation("invalid category ID %d", in.CategoryID)
	}
	f.Name = name
	f.Description = strings.TrimSpace(in.Description)
	f.CategoryID = in.CategoryID
	f.ImageAltText = strings.TrimSpace(in.ImageAltText)
	return nil
}

func setImage(f *Family, st *storage.Stored) {
	f.ImageURL = st.URL
	f.ThumbnailURL = st.ThumbnailURL
	f.OriginalFilename = st.OriginalFilename
	f.FileSize = st.Size
	f.ContentType = st.ContentType
}

func (s *Service) Create(ctx context.Context, in Request, image *multipart.FileHeader) (*Family, error) {
	f := &Family{ID: uuid.NewString()}
	if err := s.apply(ctx, f, in); err != nil {
		return nil, err
	}
	switch {
	case image != nil:
		st, err := s.images.SaveFile(ImageDir, image)
		if err != nil {
			return nil, err
		}
		setImage(f, st)
	case in.ImageURL != "":
		f.ImageURL = strings.TrimSpace(in.ImageURL)
	}
	if err := s.repo.Create(ctx, f); err != nil {
		if image != nil {
			s.dropImage(f.ImageURL)
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Family, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]Family, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id string, in Request, image *multipart.FileHeader) (*Family, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, f, in); err != nil {
		return nil, err
	}
	old := f.ImageURL
	if image != nil {
		st, err := s.images.SaveFile(ImageDir, image)
		if err != nil {
			return nil, err
		}
		setImage(f, st)
	} else if in.ImageURL != "" && in.ImageURL != old {
		f.ImageURL = strings.TrimSpace(in.ImageURL)
		f.ThumbnailURL = ""
	}
	if err := s.repo.Update(ctx, f); err != nil {
		if image != nil {
			s.dropImage(f.ImageURL)
		}
		return nil, err
	}
	if f.ImageURL != old {
		s.dropImage(old)
	}
	return f, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	used, err := s.repo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return apperr.Conflict("cannot delete product family %s: products reference it", id)
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.dropImage(f.ImageURL)
	return nil
}

// dropImage only touches files we stored ourselves.
func (s *Service) dropImage(url string) {
	if !strings.HasPrefix(url, "/"+ImageDir+"/") {
		return
	}
	if err := s.images.Delete(url); err != nil {
		slog.Warn("remove family image", "url", url, "err", err)
	}
}
