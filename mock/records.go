package mock

import (
	"context"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"
)

var _ gtfobins.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of gtfobins.RecordService.
type RecordService struct {
	ListNamesFn         func(ctx context.Context) ([]string, error)
	FindRecordFn        func(ctx context.Context, name string) (*gtfobins.Record, error)
	IndexFn             func(ctx context.Context) (gtfobins.Index, error)
	NamesWithCategoryFn func(ctx context.Context, c gtfobins.Category) ([]string, error)
}

func (s *RecordService) ListNames(ctx context.Context) ([]string, error) {
	return s.ListNamesFn(ctx)
}

func (s *RecordService) FindRecord(ctx context.Context, name string) (*gtfobins.Record, error) {
	return s.FindRecordFn(ctx, name)
}

func (s *RecordService) Index(ctx context.Context) (gtfobins.Index, error) {
	return s.IndexFn(ctx)
}

func (s *RecordService) NamesWithCategory(ctx context.Context, c gtfobins.Category) ([]string, error) {
	return s.NamesWithCategoryFn(ctx, c)
}
