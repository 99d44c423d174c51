package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	gtfobins "github.com/t0thkr1s/gtfobins-cli"
	"github.com/t0thkr1s/gtfobins-cli/mock"
	gtfoslog "github.com/t0thkr1s/gtfobins-cli/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRecordService_ListNames(t *testing.T) {
	t.Parallel()

	t.Run("logs the operation with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			ListNamesFn: func(ctx context.Context) ([]string, error) {
				return []string{"find", "vim"}, nil
			},
		}

		svc := gtfoslog.NewLoggingRecordService(inner, logger)
		names, err := svc.ListNames(context.Background())

		require.NoError(t, err)
		assert.Len(t, names, 2)
		output := buf.String()
		assert.Contains(t, output, "list names")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})
}

func TestLoggingRecordService_FindRecord(t *testing.T) {
	t.Parallel()

	t.Run("logs the name and the error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			FindRecordFn: func(ctx context.Context, name string) (*gtfobins.Record, error) {
				return nil, gtfobins.Errorf(gtfobins.ENOTFOUND, "no record for %q", name)
			},
		}

		svc := gtfoslog.NewLoggingRecordService(inner, logger)
		_, err := svc.FindRecord(context.Background(), "xyz")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "find record")
		assert.Contains(t, output, "name=xyz")
		assert.Contains(t, output, "not_found")
	})
}

func TestLoggingRecordService_NamesWithCategory(t *testing.T) {
	t.Parallel()

	t.Run("logs the category and match count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			NamesWithCategoryFn: func(ctx context.Context, c gtfobins.Category) ([]string, error) {
				return []string{"file", "grep"}, nil
			},
		}

		svc := gtfoslog.NewLoggingRecordService(inner, logger)
		names, err := svc.NamesWithCategory(context.Background(), gtfobins.CategorySUID)

		require.NoError(t, err)
		assert.Len(t, names, 2)
		output := buf.String()
		assert.Contains(t, output, "names with category")
		assert.Contains(t, output, "category=suid")
		assert.Contains(t, output, "count=2")
	})
}
