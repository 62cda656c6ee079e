package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"pizza_manager/model"
)

type ProductService struct {
	api *Client
}

func NewProductService(api *Client) *ProductService {
	return &ProductService{api: api}
}

func (s *ProductService) GetAll(ctx context.Context) ([]model.ProductModel, error) {
	env, err := s.api.get(ctx, "/products", nil)
	if err != nil {
		return nil, err
	}
	return Items[model.ProductModel](env)
}

// Create gửi multipart: từng field một, ảnh là phần tùy chọn
func (s *ProductService) Create(ctx context.Context, input model.CreateProductInput, productSlug string, imageName string, image io.Reader) (Envelope, error) {
	fields := map[string]string{
		"name":        input.Name,
		"slug":        productSlug,
		"price":       fmt.Sprintf("%g", input.Price),
		"description": input.Description,
		"categoryId":  input.CategoryId,
		"productType": string(input.ProductType),
		"productRole": string(input.ProductRole),
	}
	return s.api.sendMultipart(ctx, http.MethodPost, "/products", fields, "image", imageName, image)
}

func (s *ProductService) Update(ctx context.Context, productId string, input model.UpdateProductInput, imageName string, image io.Reader) (Envelope, error) {
	fields := map[string]string{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Price != nil {
		fields["price"] = fmt.Sprintf("%g", *input.Price)
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.CategoryId != nil {
		fields["categoryId"] = *input.CategoryId
	}
	if input.ImageUrl != nil {
		fields["imageUrl"] = *input.ImageUrl
	}
	if input.ProductType != nil {
		fields["productType"] = string(*input.ProductType)
	}
	if input.Status != nil {
		fields["productStatus"] = string(*input.Status)
	}
	return s.api.sendMultipart(ctx, http.MethodPut, "/products/"+productId, fields, "image", imageName, image)
}
