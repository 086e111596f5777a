package controllers

import (
	"github.com/Samoo1234/HotelCosta-sub001/config"
	"github.com/Samoo1234/HotelCosta-sub001/dto"
	"github.com/Samoo1234/HotelCosta-sub001/models"
	"github.com/Samoo1234/HotelCosta-sub001/response"
	"github.com/Samoo1234/HotelCosta-sub001/validator"

	"github.com/gin-gonic/gin"
)

func GetProducts(c *gin.Context) {
	query := config.DB.Model(&models.Product{}).Order("name")
	if c.Query("onlyActive") == "true" {
		query = query.Where("active = ?", true)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, products)
}

func CreateProduct(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	product := models.Product{
		Name:   request.Name,
		Price:  request.Price,
		Stock:  request.Stock,
		Active: true,
	}

	if err := validator.ValidateProduct(&product); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&product).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, product)
}

func UpdateProduct(c *gin.Context) {
	var request dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	var product models.Product
	if err := config.DB.First(&product, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != "" {
		product.Name = request.Name
	}
	if request.Price != 0 {
		product.Price = request.Price
	}
	if request.Stock != 0 {
		product.Stock = request.Stock
	}
	if request.Active != nil {
		product.Active = *request.Active
	}

	if err := validator.ValidateProduct(&product); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&product).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, product)
}

func DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Produto com histórico de consumo é só desativado
	var count int64
	config.DB.Model(&models.Consumption{}).Where("product_id = ?", product.ID).Count(&count)
	if count > 0 {
		product.Active = false
		if err := config.DB.Save(&product).Error; err != nil {
			response.ServerError(c)
			return
		}
		response.Success(c, product)
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": product.ID})
}
