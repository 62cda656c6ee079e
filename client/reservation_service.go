package client

import (
	"context"

	"pizza_manager/model"
)

type ReservationService struct {
	api *Client
}

func NewReservationService(api *Client) *ReservationService {
	return &ReservationService{api: api}
}

func (s *ReservationService) GetAll(ctx context.Context) ([]model.Reservation, error) {
	env, err := s.api.get(ctx, "/reservations", nil)
	if err != nil {
		return nil, err
	}
	return Items[model.Reservation](env)
}

func (s *ReservationService) Create(ctx context.Context, input model.CreateReservationInput) (Envelope, error) {
	return s.api.postJSON(ctx, "/reservations", input)
}

func (s *ReservationService) Confirm(ctx context.Context, reservationId string) (Envelope, error) {
	return s.api.putJSON(ctx, "/reservations/"+reservationId+"/confirm", nil)
}

func (s *ReservationService) Cancel(ctx context.Context, reservationId string) (Envelope, error) {
	return s.api.putJSON(ctx, "/reservations/"+reservationId+"/cancel", nil)
}

func (s *ReservationService) CheckIn(ctx context.Context, reservationId string) (Envelope, error) {
	return s.api.putJSON(ctx, "/reservations/"+reservationId+"/check-in", nil)
}

func (s *ReservationService) AssignTable(ctx context.Context, input model.AssignTableInput) (Envelope, error) {
	return s.api.postJSON(ctx, "/reservations/assign-table", input)
}

func (s *ReservationService) CancelAssignTable(ctx context.Context, input model.CancelAssignTableInput) (Envelope, error) {
	return s.api.postJSON(ctx, "/reservations/cancel-assign-table", input)
}
