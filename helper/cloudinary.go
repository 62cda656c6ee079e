package helper

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageUploader bọc client Cloudinary, khởi tạo một lần lúc start.
// Cấu hình sai chỉ làm mất tính năng upload, không được đánh sập server
// giữa request.
type ImageUploader struct {
	cld *cloudinary.Cloudinary
}

func NewImageUploader() (*ImageUploader, error) {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return nil, fmt.Errorf("không khởi tạo được Cloudinary: %v", err)
	}
	return &ImageUploader{cld: cld}, nil
}

// UploadImage tải ảnh món lên Cloudinary và trả về secure URL
func (u *ImageUploader) UploadImage(ctx context.Context, productId string, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("không thể mở file ảnh: %v", err)
	}
	defer file.Close()

	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       "products",
		PublicID:     fmt.Sprintf("product_%s_%d", productId, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("không thể tải ảnh lên Cloudinary: %v", err)
	}
	return result.SecureURL, nil
}
