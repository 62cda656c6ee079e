package client

import (
	"context"

	"pizza_manager/model"
)

type SettingService struct {
	api *Client
}

func NewSettingService(api *Client) *SettingService {
	return &SettingService{api: api}
}

func (s *SettingService) GetAll(ctx context.Context) ([]model.Setting, error) {
	env, err := s.api.get(ctx, "/settings", nil)
	if err != nil {
		return nil, err
	}
	return Items[model.Setting](env)
}

// Update: backend nhận configType dạng số theo bảng tra cố định
func (s *SettingService) Update(ctx context.Context, input model.UpdateSettingInput) (Envelope, error) {
	payload := map[string]any{
		"id":         input.ID,
		"configType": model.ConfigTypeCode(input.ConfigType),
		"key":        input.Key,
		"value":      input.Value,
	}
	return s.api.putJSON(ctx, "/settings/"+input.ID, payload)
}
