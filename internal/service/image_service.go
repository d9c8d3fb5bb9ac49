package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"hotelbooking/internal/storage"
)

var imageFolders = map[string]bool{"rooms": true, "posts": true}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

type ImageService interface {
	Upload(ctx context.Context, folder, fileName string, file io.Reader, size int64) (string, error)
}

type imageService struct {
	storage storage.Storage
	log     logrus.FieldLogger
}

// NewImageService accepts a nil storage; uploads then fail with a server error.
func NewImageService(storage storage.Storage, log logrus.FieldLogger) ImageService {
	return &imageService{storage: storage, log: log.WithField("component", "images")}
}

// Upload stores an image for a room or post and returns its public URL.
func (s *imageService) Upload(ctx context.Context, folder, fileName string, file io.Reader, size int64) (string, error) {
	if !imageFolders[folder] {
		return "", withDetail(KindBadRequest, MsgBadRequest, errors.New("folder должен быть rooms или posts"))
	}
	if !imageExtensions[strings.ToLower(filepath.Ext(fileName))] {
		return "", withDetail(KindBadRequest, MsgBadRequest, errors.New("недопустимый формат изображения"))
	}
	if s.storage == nil {
		return "", newError(KindServerError, MsgServerError, errors.New("хранилище изображений не настроено"))
	}

	objectName, imageURL, err := s.storage.UploadImage(ctx, folder, fileName, file, size)
	if err != nil {
		s.log.WithError(err).WithField("file", fileName).Error("upload image")
		return "", newError(KindServerError, MsgServerError, err)
	}

	s.log.WithField("object", objectName).Info("image uploaded")
	return imageURL, nil
}
