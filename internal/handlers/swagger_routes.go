package handlers

import (
	"photoshoot_backend/internal/models"
	"photoshoot_backend/internal/services/dto"
	"photoshoot_backend/pkg/apperrors"
)

// EntityHandler serves all four JSON kinds, so their routes are documented
// here one function per route.

type (
	photoShootEnvelope = dto.Envelope[models.PhotoShoot]
	lookBookEnvelope   = dto.Envelope[models.LookBook]
	scheduleEnvelope   = dto.Envelope[models.Schedule]
	paymentEnvelope    = dto.Envelope[models.Payment]
	errorResponse      = apperrors.ErrorResponse
)

// ============================================
// PHOTO SHOOT
// ============================================

// createPhotoShoot godoc
// @Summary Create a photo shoot
// @Tags Photo shoots
// @Accept json
// @Produce json
// @Param request body dto.PhotoShootRequest true "Photo shoot"
// @Success 201 {object} dto.Envelope[models.PhotoShoot]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /photo_shoot [post]
func createPhotoShoot() {}

// updatePhotoShoot godoc
// @Summary Update a photo shoot
// @Tags Photo shoots
// @Accept json
// @Produce json
// @Param photo_shoot_id query string true "Photo shoot ID"
// @Param request body dto.PhotoShootRequest true "Photo shoot"
// @Success 201 {object} dto.Envelope[models.PhotoShoot]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /photo_shoot [put]
func updatePhotoShoot() {}

// getPhotoShoot godoc
// @Summary Get an active photo shoot
// @Tags Photo shoots
// @Produce json
// @Param photo_shoot_id query string true "Photo shoot ID"
// @Success 200 {object} dto.Envelope[models.PhotoShoot]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /photo_shoot [get]
func getPhotoShoot() {}

// deletePhotoShoot godoc
// @Summary Delete a photo shoot
// @Description Child records are left in place.
// @Tags Photo shoots
// @Produce json
// @Param photo_shoot_id query string true "Photo shoot ID"
// @Success 200 {object} dto.Envelope[models.PhotoShoot]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /photo_shoot [delete]
func deletePhotoShoot() {}

// getAllPhotoShoots godoc
// @Summary List every photo shoot
// @Description Includes inactive records.
// @Tags Photo shoots
// @Produce json
// @Success 200 {object} dto.Envelope[models.PhotoShoot]
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /photo_shoot/all [get]
func getAllPhotoShoots() {}

// ============================================
// LOOK BOOK
// ============================================

// createLookBook godoc
// @Summary Create a look book
// @Tags Look books
// @Accept json
// @Produce json
// @Param request body dto.LookBookRequest true "Look book"
// @Success 201 {object} dto.Envelope[models.LookBook]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse "Photo shoot not found"
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /look_book [post]
func createLookBook() {}

// updateLookBook godoc
// @Summary Update a look book
// @Tags Look books
// @Accept json
// @Produce json
// @Param look_book_id query string true "Look book ID"
// @Param request body dto.LookBookRequest true "Look book"
// @Success 201 {object} dto.Envelope[models.LookBook]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /look_book [put]
func updateLookBook() {}

// getLookBook godoc
// @Summary Get an active look book
// @Tags Look books
// @Produce json
// @Param look_book_id query string true "Look book ID"
// @Success 200 {object} dto.Envelope[models.LookBook]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /look_book [get]
func getLookBook() {}

// deleteLookBook godoc
// @Summary Delete a look book
// @Tags Look books
// @Produce json
// @Param look_book_id query string true "Look book ID"
// @Success 200 {object} dto.Envelope[models.LookBook]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /look_book [delete]
func deleteLookBook() {}

// getAllLookBooks godoc
// @Summary List every look book
// @Tags Look books
// @Produce json
// @Success 200 {object} dto.Envelope[models.LookBook]
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /look_book/all [get]
func getAllLookBooks() {}

// listLookBooksByPhotoShoot godoc
// @Summary List active look books of a photo shoot
// @Tags Look books
// @Produce json
// @Param photo_shoot_id query string true "Photo shoot ID"
// @Success 200 {object} dto.Envelope[models.LookBook]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /look_book/id [get]
func listLookBooksByPhotoShoot() {}

// ============================================
// SCHEDULE
// ============================================

// createSchedule godoc
// @Summary Create a schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body dto.ScheduleRequest true "Schedule"
// @Success 201 {object} dto.Envelope[models.Schedule]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse "Photo shoot not found"
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /schedule [post]
func createSchedule() {}

// updateSchedule godoc
// @Summary Update a schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param schedule_id query string true "Schedule ID"
// @Param request body dto.ScheduleRequest true "Schedule"
// @Success 201 {object} dto.Envelope[models.Schedule]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /schedule [put]
func updateSchedule() {}

// getSchedule godoc
// @Summary Get an active schedule
// @Tags Schedules
// @Produce json
// @Param schedule_id query string true "Schedule ID"
// @Success 200 {object} dto.Envelope[models.Schedule]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /schedule [get]
func getSchedule() {}

// deleteSchedule godoc
// @Summary Delete a schedule
// @Tags Schedules
// @Produce json
// @Param schedule_id query string true "Schedule ID"
// @Success 200 {object} dto.Envelope[models.Schedule]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /schedule [delete]
func deleteSchedule() {}

// getAllSchedules godoc
// @Summary List every schedule
// @Tags Schedules
// @Produce json
// @Success 200 {object} dto.Envelope[models.Schedule]
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /schedule/all [get]
func getAllSchedules() {}

// listSchedulesByPhotoShoot godoc
// @Summary List active schedules of a photo shoot
// @Tags Schedules
// @Produce json
// @Param photo_shoot_id query string true "Photo shoot ID"
// @Success 200 {object} dto.Envelope[models.Schedule]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /schedule/id [get]
func listSchedulesByPhotoShoot() {}

// ============================================
// PAYMENT
// ============================================

// createPayment godoc
// @Summary Create a payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body dto.PaymentRequest true "Payment"
// @Success 201 {object} dto.Envelope[models.Payment]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse "Photo shoot not found"
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /payment [post]
func createPayment() {}

// updatePayment godoc
// @Summary Update a payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param payment_id query string true "Payment ID"
// @Param request body dto.PaymentRequest true "Payment"
// @Success 201 {object} dto.Envelope[models.Payment]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /payment [put]
func updatePayment() {}

// getPayment godoc
// @Summary Get an active payment
// @Tags Payments
// @Produce json
// @Param payment_id query string true "Payment ID"
// @Success 200 {object} dto.Envelope[models.Payment]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /payment [get]
func getPayment() {}

// deletePayment godoc
// @Summary Delete a payment
// @Tags Payments
// @Produce json
// @Param payment_id query string true "Payment ID"
// @Success 200 {object} dto.Envelope[models.Payment]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /payment [delete]
func deletePayment() {}

// getAllPayments godoc
// @Summary List every payment
// @Tags Payments
// @Produce json
// @Success 200 {object} dto.Envelope[models.Payment]
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /payment/all [get]
func getAllPayments() {}

// listPaymentsByPhotoShoot godoc
// @Summary List active payments of a photo shoot
// @Tags Payments
// @Produce json
// @Param photo_shoot_id query string true "Photo shoot ID"
// @Success 200 {object} dto.Envelope[models.Payment]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /payment/id [get]
func listPaymentsByPhotoShoot() {}
