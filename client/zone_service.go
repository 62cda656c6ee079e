package client

import (
	"context"

	"pizza_manager/model"
)

type ZoneService struct {
	api *Client
}

func NewZoneService(api *Client) *ZoneService {
	return &ZoneService{api: api}
}

func (s *ZoneService) GetAll(ctx context.Context) ([]model.Zone, error) {
	env, err := s.api.get(ctx, "/zones", nil)
	if err != nil {
		return nil, err
	}
	return Items[model.Zone](env)
}
