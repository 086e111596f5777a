package validator

import (
	"regexp"
	"time"

	"github.com/Samoo1234/HotelCosta-sub001/constants"
	"github.com/Samoo1234/HotelCosta-sub001/errors"
	"github.com/Samoo1234/HotelCosta-sub001/models"
)

// ValidateUser valida os dados do usuário da recepção
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "E-mail não pode ficar em branco", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "E-mail inválido", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Senha não pode ficar em branco", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Senha deve ter pelo menos 6 caracteres", nil)
	}

	if user.Role != models.RoleReceptionist && user.Role != models.RoleAdmin {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Perfil inválido", nil)
	}

	return nil
}

// ValidateGuest valida os dados do hóspede
func ValidateGuest(guest *models.Guest) error {
	if guest.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Nome do hóspede não pode ficar em branco", nil)
	}

	if guest.Document == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Documento do hóspede não pode ficar em branco", nil)
	}

	if guest.Email != "" && !isValidEmail(guest.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "E-mail do hóspede inválido", nil)
	}

	if guest.Phone != "" && !isValidPhone(guest.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Telefone do hóspede inválido", nil)
	}

	return nil
}

// ValidateRoom valida os dados do quarto
func ValidateRoom(room *models.Room) error {
	if room.Number == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Número do quarto não pode ficar em branco", nil)
	}

	if room.NightlyRate < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Valor da diária não pode ser negativo", nil)
	}

	if err := room.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Status do quarto inválido", err)
	}

	return nil
}

// ValidateStayDates valida o par de datas da estadia. Check-out vazio
// significa estadia em aberto e é aceito.
func ValidateStayDates(checkInDate, checkOutDate string) error {
	if checkInDate == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Data de check-in não pode ficar em branco", nil)
	}

	checkIn, err := time.Parse(models.DateLayout, checkInDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Data de check-in inválida", err)
	}

	if checkOutDate == "" {
		return nil
	}

	checkOut, err := time.Parse(models.DateLayout, checkOutDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Data de check-out inválida", err)
	}

	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "Data de check-out deve ser posterior à data de check-in", nil)
	}

	return nil
}

// ValidateProduct valida os dados do produto
func ValidateProduct(product *models.Product) error {
	if product.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Nome do produto não pode ficar em branco", nil)
	}

	if product.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Preço não pode ser negativo", nil)
	}

	if product.Stock < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Estoque não pode ser negativo", nil)
	}

	return nil
}

// ValidatePayment valida os dados do pagamento
func ValidatePayment(payment *models.Payment) error {
	if payment.ReservationID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID da reserva não pode ficar em branco", nil)
	}

	if payment.Amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Valor do pagamento deve ser maior que zero", nil)
	}

	validMethod := false
	for _, m := range constants.PaymentMethods {
		if payment.Method == m {
			validMethod = true
			break
		}
	}
	if !validMethod {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Forma de pagamento inválida", nil)
	}

	return nil
}

// ValidateSettings valida a configuração do hotel
func ValidateSettings(settings *models.HotelSettings) error {
	if !isValidClockTime(settings.CheckInTime) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Horário de check-in inválido, use HH:MM", nil)
	}

	if !isValidClockTime(settings.CheckOutTime) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Horário de check-out inválido, use HH:MM", nil)
	}

	return nil
}

// isValidEmail verifica e-mail válido
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone verifica telefone válido (10 ou 11 dígitos)
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10,11}$`)
	return phoneRegex.MatchString(phone)
}

// isValidClockTime verifica horário HH:MM
func isValidClockTime(value string) bool {
	timeRegex := regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	return timeRegex.MatchString(value)
}
