package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSalonClosed возвращается при попытке записи на закрытый день
	ErrSalonClosed = errors.New("salon is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время начала не лежит на 30-минутной сетке
	ErrInvalidTimeSlot = errors.New("start time is not on the slot grid")

	// ErrSlotNotAvailable возвращается, когда выбранное время занято или не помещается до закрытия
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrDayFullyBooked возвращается, когда день уже заполнен по лимиту записей
	ErrDayFullyBooked = errors.New("day is fully booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
