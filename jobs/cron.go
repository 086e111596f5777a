package jobs

import (
	"log"

	"github.com/Samoo1234/HotelCosta-sub001/utils"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// RoomFlagRefresher recalcula o flag consultivo dos quartos
type RoomFlagRefresher interface {
	RefreshRoomFlags() error
}

var roomFlagRefresher RoomFlagRefresher

// SetRoomFlagRefresher injeta a implementação usada pelo cron
func SetRoomFlagRefresher(refresher RoomFlagRefresher) {
	roomFlagRefresher = refresher
}

// InitCronJobs registra os jobs agendados
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Roda à 0h todo dia: realinha o flag consultivo dos quartos com as
	// reservas vigentes
	_, err := c.AddFunc("0 0 * * *", func() {
		if roomFlagRefresher == nil {
			utils.LogError("RoomFlagRefresher não configurado, pulando atualização")
			return
		}
		if err := roomFlagRefresher.RefreshRoomFlags(); err != nil {
			utils.LogError("Erro ao atualizar flags dos quartos: %v", err)
			return
		}
		utils.LogInfo("Flags dos quartos atualizados")
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs inicializados com sucesso")
	return nil
}
