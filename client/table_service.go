package client

import (
	"context"

	"pizza_manager/model"
)

type TableService struct {
	api *Client
}

func NewTableService(api *Client) *TableService {
	return &TableService{api: api}
}

func (s *TableService) GetAll(ctx context.Context) ([]model.Table, error) {
	env, err := s.api.get(ctx, "/tables", nil)
	if err != nil {
		return nil, err
	}
	return Items[model.Table](env)
}

func (s *TableService) Open(ctx context.Context, tableId string) (Envelope, error) {
	return s.api.putJSON(ctx, "/tables/"+tableId+"/open", nil)
}

func (s *TableService) Close(ctx context.Context, tableId string) (Envelope, error) {
	return s.api.putJSON(ctx, "/tables/"+tableId+"/close", nil)
}

func (s *TableService) Lock(ctx context.Context, tableId, note string) (Envelope, error) {
	return s.api.putJSON(ctx, "/tables/"+tableId+"/lock", map[string]string{"note": note})
}

func (s *TableService) Unlock(ctx context.Context, tableId string) (Envelope, error) {
	return s.api.putJSON(ctx, "/tables/"+tableId+"/unlock", nil)
}

func (s *TableService) Merge(ctx context.Context, input model.MergeTableInput) (Envelope, error) {
	return s.api.postJSON(ctx, "/tables/merge", input)
}

func (s *TableService) Unmerge(ctx context.Context, tableId string) (Envelope, error) {
	return s.api.putJSON(ctx, "/tables/"+tableId+"/unmerge", nil)
}

func (s *TableService) SwapOrder(ctx context.Context, tableId, targetTableId string) (Envelope, error) {
	return s.api.putJSON(ctx, "/tables/"+tableId+"/swap", map[string]string{"targetTableId": targetTableId})
}

func (s *TableService) CancelOrder(ctx context.Context, tableId string) (Envelope, error) {
	return s.api.putJSON(ctx, "/tables/"+tableId+"/cancel-order", nil)
}
