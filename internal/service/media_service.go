package service

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxUploadSize caps a single upload at 500 MB.
const MaxUploadSize = 500 << 20

var uploadAllowedTypes = []string{"image/", "video/", "application/pdf"}

type MediaService struct {
	MediaRepo *repository.MediaRepository
	Storage   StorageProvider
}

func NewMediaService(mediaRepo *repository.MediaRepository, storage StorageProvider) *MediaService {
	return &MediaService{MediaRepo: mediaRepo, Storage: storage}
}

type UploadRequest struct {
	Folder  string
	AltText string
	Caption string
}

func mediaTypeOf(mimeType string) model.MediaType {
	switch {
	case util.IsImage(mimeType):
		return model.MediaImage
	case util.IsVideo(mimeType):
		return model.MediaVideo
	default:
		return model.MediaDocument
	}
}

func sanitizeFolder(folder string) string {
	folder = strings.Trim(strings.ReplaceAll(folder, "\\", "/"), "/")
	if folder == "" || strings.Contains(folder, "..") {
		return "general"
	}
	return folder
}

// Upload stores an uploaded file and records it in the media library. Videos
// are probed for duration and get a generated thumbnail; images get their
// dimensions recorded.
func (s *MediaService) Upload(ctx context.Context, userID uint, header *multipart.FileHeader, req UploadRequest) (*model.MediaFile, error) {
	if header.Size > MaxUploadSize {
		return nil, util.NewValidationError("file", "file exceeds the %d MB limit", MaxUploadSize>>20)
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, uploadAllowedTypes)
	if err != nil {
		return nil, util.NewValidationError("file", "%s is not an accepted file type", mimeType)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	// stage to a temp file so ffprobe and image decoding can re-read it
	tmp, err := os.CreateTemp("", "upload-*")
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return nil, err
	}
	tmp.Close()

	folder := sanitizeFolder(req.Folder)
	ext := strings.ToLower(filepath.Ext(header.Filename))
	filename := uuid.New().String() + ext
	objectName := folder + "/" + filename
	fileType := mediaTypeOf(mimeType)

	media := &model.MediaFile{
		Filename:         filename,
		OriginalFilename: header.Filename,
		FilePath:         objectName,
		FileType:         fileType,
		MimeType:         mimeType,
		FileSize:         header.Size,
		Folder:           folder,
		AltText:          req.AltText,
		Caption:          req.Caption,
		UploadedByID:     userID,
	}

	switch fileType {
	case model.MediaImage:
		if f, err := os.Open(tmpPath); err == nil {
			if cfg, _, err := image.DecodeConfig(f); err == nil {
				media.Width = cfg.Width
				media.Height = cfg.Height
			}
			f.Close()
		}
	case model.MediaVideo:
		if info, err := util.GetVideoInfo(tmpPath); err == nil {
			media.DurationSeconds = int(math.Round(info.Duration))
			media.Width = info.Width
			media.Height = info.Height
		} else {
			logger.Log.Warn("video probe failed", zap.String("file", header.Filename), zap.Error(err))
		}
	}

	staged, err := os.Open(tmpPath)
	if err != nil {
		return nil, err
	}
	defer staged.Close()

	url, err := s.Storage.Save(ctx, objectName, staged, header.Size, mimeType)
	if err != nil {
		return nil, err
	}
	media.FileURL = url

	if fileType == model.MediaVideo {
		if thumbURL, err := s.generateThumbnail(ctx, tmpPath, folder, filename); err == nil {
			media.ThumbnailURL = thumbURL
		} else {
			logger.Log.Warn("thumbnail generation failed", zap.String("file", header.Filename), zap.Error(err))
		}
	}

	if err := s.MediaRepo.Create(media); err != nil {
		s.Storage.Remove(ctx, objectName)
		return nil, err
	}
	return media, nil
}

func (s *MediaService) generateThumbnail(ctx context.Context, videoPath, folder, filename string) (string, error) {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	thumbPath := filepath.Join(os.TempDir(), base+"_thumb.jpg")
	defer os.Remove(thumbPath)

	if err := util.GenerateThumbnail(videoPath, thumbPath, "00:00:01"); err != nil {
		return "", err
	}

	thumb, err := os.Open(thumbPath)
	if err != nil {
		return "", err
	}
	defer thumb.Close()

	stat, err := thumb.Stat()
	if err != nil {
		return "", err
	}
	return s.Storage.Save(ctx, fmt.Sprintf("%s/thumbnails/%s_thumb.jpg", folder, base), thumb, stat.Size(), "image/jpeg")
}

func (s *MediaService) GetFile(id uint) (*model.MediaFile, error) {
	return s.MediaRepo.FindByID(id)
}

func (s *MediaService) ListFiles(folder string, fileType model.MediaType, page, limit int) ([]model.MediaFile, int64, error) {
	return s.MediaRepo.List(folder, fileType, page, limit)
}

type UpdateMediaRequest struct {
	AltText *string `json:"altText"`
	Caption *string `json:"caption"`
	Folder  *string `json:"folder"`
}

func (s *MediaService) UpdateFile(id uint, req UpdateMediaRequest) (*model.MediaFile, error) {
	media, err := s.MediaRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if req.AltText != nil {
		media.AltText = *req.AltText
	}
	if req.Caption != nil {
		media.Caption = *req.Caption
	}
	if req.Folder != nil {
		media.Folder = sanitizeFolder(*req.Folder)
	}
	if err := s.MediaRepo.Update(media); err != nil {
		return nil, err
	}
	return media, nil
}

// DeleteFile removes the library record and the stored object. A storage
// failure after the record is gone only leaves an orphaned object, which is
// preferable to a dangling library entry.
func (s *MediaService) DeleteFile(ctx context.Context, id uint) error {
	media, err := s.MediaRepo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.MediaRepo.Delete(id); err != nil {
		return err
	}
	if err := s.Storage.Remove(ctx, media.FilePath); err != nil {
		logger.Log.Warn("failed to remove stored object", zap.String("path", media.FilePath), zap.Error(err))
	}
	if media.ThumbnailURL != "" {
		base := strings.TrimSuffix(media.Filename, filepath.Ext(media.Filename))
		s.Storage.Remove(ctx, fmt.Sprintf("%s/thumbnails/%s_thumb.jpg", media.Folder, base))
	}
	return nil
}
