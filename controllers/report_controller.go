package controllers

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/Samoo1234/HotelCosta-sub001/config"
	"github.com/Samoo1234/HotelCosta-sub001/dto"
	"github.com/Samoo1234/HotelCosta-sub001/models"
	"github.com/Samoo1234/HotelCosta-sub001/response"
	"github.com/Samoo1234/HotelCosta-sub001/services"

	"github.com/gin-gonic/gin"
)

// GetRevenueReport soma pagamentos confirmados e consumos do período
func GetRevenueReport(c *gin.Context) {
	fromDate := c.Query("fromDate")
	toDate := c.Query("toDate")

	if _, err := time.Parse(models.DateLayout, fromDate); err != nil {
		response.BadRequest(c, "Data inicial inválida")
		return
	}
	if _, err := time.Parse(models.DateLayout, toDate); err != nil {
		response.BadRequest(c, "Data final inválida")
		return
	}

	rdb := config.RedisClient
	cacheKey := fmt.Sprintf("reports:revenue:%s:%s", fromDate, toDate)

	var report dto.RevenueReport
	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &report); err == nil && report.FromDate != "" {
		response.Success(c, report)
		return
	}

	// Limites do período em horário local, fim exclusivo no dia seguinte
	from, _ := time.Parse(models.DateLayout, fromDate)
	to, _ := time.Parse(models.DateLayout, toDate)
	upperBound := to.AddDate(0, 0, 1)

	type sumRow struct {
		Total float64
		Count int64
	}

	var paymentRow sumRow
	if err := config.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("status = ?", models.PaymentStatusPaid).
		Where("paid_at >= ? AND paid_at < ?", from, upperBound).
		Scan(&paymentRow).Error; err != nil {
		response.ServerError(c)
		return
	}

	var consumptionRow sumRow
	if err := config.DB.Model(&models.Consumption{}).
		Select("COALESCE(SUM(total), 0) AS total, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", from, upperBound).
		Scan(&consumptionRow).Error; err != nil {
		response.ServerError(c)
		return
	}

	report = dto.RevenueReport{
		FromDate:      fromDate,
		ToDate:        toDate,
		PaymentTotal:  math.Round(paymentRow.Total*100) / 100,
		PaymentCount:  int(paymentRow.Count),
		Consumption:   math.Round(consumptionRow.Total*100) / 100,
		ConsumptionNo: int(consumptionRow.Count),
	}

	if err := services.SetToRedis(config.Ctx, rdb, cacheKey, report, 5*time.Minute); err != nil {
		log.Printf("Erro ao gravar relatório de receita no Redis: %v", err)
	}

	response.Success(c, report)
}

// GetOccupancyReport calcula a taxa de ocupação de um dia: quartos com
// reserva ativa (confirmada ou em check-in) cobrindo a data.
func GetOccupancyReport(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		response.BadRequest(c, "Data inválida")
		return
	}

	rdb := config.RedisClient
	cacheKey := fmt.Sprintf("reports:occupancy:%s", date)

	var report dto.OccupancyReport
	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &report); err == nil && report.Date != "" {
		response.Success(c, report)
		return
	}

	var totalRooms int64
	if err := config.DB.Model(&models.Room{}).Count(&totalRooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Estadia em aberto (check_out_date nulo) conta como ocupação vigente
	var occupiedRooms int64
	if err := config.DB.Model(&models.Reservation{}).
		Distinct("room_id").
		Where("status IN ?", []models.ReservationStatus{models.StatusConfirmed, models.StatusCheckedIn}).
		Where("check_in_date <= ?", date).
		Where("check_out_date IS NULL OR check_out_date >= ?", date).
		Count(&occupiedRooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	rate := 0.0
	if totalRooms > 0 {
		rate = math.Round(float64(occupiedRooms)/float64(totalRooms)*10000) / 100
	}

	report = dto.OccupancyReport{
		Date:          date,
		TotalRooms:    int(totalRooms),
		OccupiedRooms: int(occupiedRooms),
		OccupancyRate: rate,
	}

	if err := services.SetToRedis(config.Ctx, rdb, cacheKey, report, 5*time.Minute); err != nil {
		log.Printf("Erro ao gravar relatório de ocupação no Redis: %v", err)
	}

	response.Success(c, report)
}
