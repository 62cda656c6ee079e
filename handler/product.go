package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"pizza_manager/client"
	"pizza_manager/constants"
	"pizza_manager/helper"
	"pizza_manager/model"
	"pizza_manager/utils"
)

type ProductHandler struct {
	products *client.ProductService
	locks    *ActionLocks
	uploader *helper.ImageUploader // nil khi Cloudinary không cấu hình
}

func NewProductHandler(products *client.ProductService, locks *ActionLocks, uploader *helper.ImageUploader) *ProductHandler {
	return &ProductHandler{products: products, locks: locks, uploader: uploader}
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	items, err := h.products.GetAll(c.Context())
	if err != nil {
		log.Printf("Lỗi lấy danh sách món: %v", err)
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.ERROR_UPSTREAM, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       items,
		TotalCount: int64(len(items)),
	})
}

func openOptionalImage(c *fiber.Ctx) (string, io.Reader, func(), error) {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil {
		return "", nil, func() {}, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, func() {}, err
	}
	return fileHeader.Filename, file, func() { file.Close() }, nil
}

// CreateProduct chuyển tiếp multipart lên backend, từng field một,
// ảnh là phần tùy chọn
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateProductInput)

	imageName, image, closeImage, err := openOptionalImage(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không đọc được file ảnh", err)
	}
	defer closeImage()

	// slug sinh từ danh sách hiện có, backend vẫn là nơi quyết định cuối
	existing, err := h.products.GetAll(c.Context())
	if err != nil {
		log.Printf("Không lấy được danh sách món để sinh slug: %v", err)
		existing = nil
	}
	productSlug := helper.ProductSlug(input.Name, existing)

	release, ok := h.locks.Acquire(c.Context(), productSlug, "create-product")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ERROR_ACTION_IN_FLIGHT, nil)
	}
	defer release()

	env, err := h.products.Create(c.Context(), input, productSlug, imageName, image)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.ERROR_UPSTREAM, err)
	}
	if !env.Success {
		message := env.Message
		if message == "" {
			message = constants.ERROR_UPSTREAM
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, message, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "Tạo món thành công",
		"slug":    productSlug,
	})
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	productId := c.Locals("inputId").(string)
	input := c.Locals("updateInput").(model.UpdateProductInput)

	imageName, image, closeImage, err := openOptionalImage(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không đọc được file ảnh", err)
	}
	defer closeImage()

	release, ok := h.locks.Acquire(c.Context(), productId, "update-product")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ERROR_ACTION_IN_FLIGHT, nil)
	}
	defer release()

	env, err := h.products.Update(c.Context(), productId, input, imageName, image)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.ERROR_UPSTREAM, err)
	}
	if !env.Success {
		message := env.Message
		if message == "" {
			message = constants.ERROR_UPSTREAM
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, message, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Cập nhật món thành công",
	})
}

// UploadProductImage đẩy ảnh món lên Cloudinary rồi lưu URL qua backend
func (h *ProductHandler) UploadProductImage(c *fiber.Ctx) error {
	productId := c.Locals("inputId").(string)

	if h.uploader == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Chưa cấu hình Cloudinary", nil)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Thiếu file ảnh", err)
	}
	if fileHeader.Size > 10*1024*1024 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Ảnh không được quá 10MB", nil)
	}

	secureURL, err := h.uploader.UploadImage(c.Context(), productId, fileHeader)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Không thể tải ảnh lên Cloudinary", err)
	}

	input := model.UpdateProductInput{ImageUrl: utils.Ptr(secureURL)}
	if _, err := h.products.Update(c.Context(), productId, input, "", nil); err != nil {
		log.Printf("Lỗi cập nhật URL ảnh cho món %s: %v", productId, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"url": secureURL,
	})
}

// GenerateSignature ký tham số upload trực tiếp cho web client
func (h *ProductHandler) GenerateSignature(c *fiber.Ctx) error {
	type SigParams struct {
		Folder       string `json:"folder"`
		PublicID     string `json:"public_id"`
		ResourceType string `json:"resource_type"` // Parse but don't sign
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Params không hợp lệ", err)
	}

	timestamp := time.Now().Unix()
	timestampStr := fmt.Sprintf("%d", timestamp)

	paramMap := make(map[string]string)
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}
	paramMap["timestamp"] = timestampStr

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	h1 := sha1.New()
	h1.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h1.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}
