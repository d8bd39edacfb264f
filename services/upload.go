package services

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrUploadDisabled = errors.New("media upload is not configured")

type Uploader interface {
	Upload(ctx context.Context, file io.Reader) (string, error)
}

type cloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader trả về uploader ghi vào folder; cld nil thì mọi upload đều lỗi
func NewCloudinaryUploader(cld *cloudinary.Cloudinary, folder string) Uploader {
	return &cloudinaryUploader{cld: cld, folder: folder}
}

func (u *cloudinaryUploader) Upload(ctx context.Context, file io.Reader) (string, error) {
	if u.cld == nil {
		return "", ErrUploadDisabled
	}
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: u.folder})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", errors.New(resp.Error.Message)
	}
	return resp.SecureURL, nil
}
