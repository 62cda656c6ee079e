package handler

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizza_manager/client"
)

func newProductApp(t *testing.T) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"result":{"items":[]}}`)
	}))
	t.Cleanup(srv.Close)

	// uploader nil: Cloudinary không cấu hình
	h := NewProductHandler(client.NewProductService(client.New(srv.URL)), NewActionLocks("localhost:1"), nil)

	app := fiber.New()
	app.Post("/product/:productId/image", func(c *fiber.Ctx) error {
		c.Locals("inputId", c.Params("productId"))
		return h.UploadProductImage(c)
	})
	return app
}

func TestUploadProductImageWithoutUploaderConfigured(t *testing.T) {
	app := newProductApp(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "pizza.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("ảnh giả"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/product/p1/image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	// server phải trả lỗi gọn gàng, không được chết giữa request
	resp, errTest := app.Test(req, -1)
	require.NoError(t, errTest)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Chưa cấu hình Cloudinary", body["message"])
}
