package http

import (
	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
	"github.com/MikeRez0/bakery/internal/core/utils"
	"go.uber.org/zap"
)

type ProductRequest struct {
	Version int    `json:"version"`
	Name    string `json:"name" binding:"required"`
	// Price as typed in the price input, e.g. "12.50".
	Price string `json:"price" binding:"required"`
}

type ProductResp struct {
	*domain.Product
	UIPrice      string `json:"ui_price"`
	DisplayPrice string `json:"display_price"`
}

func applyProduct(req *ProductRequest, product *domain.Product) error {
	price, err := utils.ParseUIPrice(req.Price)
	if err != nil {
		return err
	}
	product.Version = req.Version
	product.Name = req.Name
	product.Price = price
	return nil
}

func renderProduct(product *domain.Product) any {
	return ProductResp{
		Product:      product,
		UIPrice:      utils.FormatUIPrice(product.Price),
		DisplayPrice: utils.FormatAsCurrency(product.Price),
	}
}

func NewProductHandler(service port.ProductService,
	logger *zap.Logger) (*EntityHandler[*domain.Product, ProductRequest], error) {
	return NewEntityHandler[*domain.Product](service, "Product", applyProduct, renderProduct, logger), nil
}
