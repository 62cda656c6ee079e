package model

type ProductType string

const (
	HotKitchen  ProductType = "HotKitchen"
	ColdKitchen ProductType = "ColdKitchen"
)

type ProductRole string

const (
	ProductMaster ProductRole = "Master"
	ProductCombo  ProductRole = "Combo"
	ProductChild  ProductRole = "child"
)

type ProductStatus string

const (
	ProductAvailable       ProductStatus = "Available"
	ProductOutOfIngredient ProductStatus = "OutOfIngredient"
	ProductLocked          ProductStatus = "Locked"
)

type ProductOption struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	ItemOptions []ProductOptionItem `json:"itemOptions"`
}

type ProductOptionItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	AdditionalPrice float64 `json:"additionalPrice"`
}

type ProductSize struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Price   float64  `json:"price"`
	Recipes []Recipe `json:"recipes"`
}

type Recipe struct {
	ID           string  `json:"id"`
	IngredientId string  `json:"ingredientId"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
}

type ProductComboSlot struct {
	ID             string          `json:"id"`
	SlotName       string          `json:"slotName"`
	ComboSlotItems []ComboSlotItem `json:"comboSlotItems"`
}

type ComboSlotItem struct {
	ID         string  `json:"id"`
	ProductId  string  `json:"productId"`
	ExtraPrice float64 `json:"extraPrice"`
}

type ProductModel struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Slug              string             `json:"slug"`
	Price             float64            `json:"price"`
	Description       string             `json:"description"`
	CategoryId        string             `json:"categoryId"`
	ImageUrl          string             `json:"imageUrl"`
	ProductType       ProductType        `json:"productType"`
	ProductRole       ProductRole        `json:"productRole"`
	ProductStatus     ProductStatus      `json:"productStatus"`
	ProductOptions    []ProductOption    `json:"productOptions"`
	ChildProducts     []ProductModel     `json:"childProducts"`
	ProductComboSlots []ProductComboSlot `json:"productComboSlots"`
	ProductSizes      []ProductSize      `json:"productSizes"`
	Recipes           []Recipe           `json:"recipes"`
}

type CreateProductInput struct {
	Name        string      `json:"name" validate:"required,min=2,max=150"`
	Price       float64     `json:"price" validate:"required,gt=0"`
	Description string      `json:"description" validate:"max=1000"`
	CategoryId  string      `json:"categoryId" validate:"required"`
	ProductType ProductType `json:"productType" validate:"required,oneof=HotKitchen ColdKitchen"`
	ProductRole ProductRole `json:"productRole" validate:"required,oneof=Master Combo child"`
}

type UpdateProductInput struct {
	Name        *string        `json:"name" validate:"omitempty,min=2,max=150"`
	Price       *float64       `json:"price" validate:"omitempty,gt=0"`
	Description *string        `json:"description" validate:"omitempty,max=1000"`
	CategoryId  *string        `json:"categoryId"`
	ImageUrl    *string        `json:"imageUrl" validate:"omitempty,url"`
	ProductType *ProductType   `json:"productType" validate:"omitempty,oneof=HotKitchen ColdKitchen"`
	Status      *ProductStatus `json:"status" validate:"omitempty,oneof=Available OutOfIngredient Locked"`
}
