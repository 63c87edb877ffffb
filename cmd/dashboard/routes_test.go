package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/66gu1/filmoradmin/internal/app/menu"
	"github.com/66gu1/filmoradmin/internal/app/resource"
	"github.com/stretchr/testify/require"
)

func TestPrintRoutes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := printRoutes(&buf, menu.RouteMap{
		"/":         {},
		"/branches": {"view_branch"},
		"/reports":  {"view_report", "export_report"},
	})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "ROUTE")
	require.Regexp(t, `(?m)^/\s+-$`, out)
	require.Regexp(t, `(?m)^/branches\s+view_branch$`, out)
	require.Regexp(t, `(?m)^/reports\s+view_report,export_report$`, out)
}

func TestPrintResources(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, printResources(&buf, resource.DefaultRegistry()))
	require.Regexp(t, `(?m)^reports\s+/reports\s+role matrix\s+true$`, buf.String())
	require.Regexp(t, `(?m)^branches\s+/branches\s+permissions\s+false$`, buf.String())
}

func TestStartCleanup(t *testing.T) {
	t.Parallel()

	calls := make(chan struct{}, 8)
	deleteExpired := func(context.Context) (int64, error) {
		select {
		case calls <- struct{}{}:
		default:
		}
		return 1, nil
	}
	stop := startCleanup(context.Background(), deleteExpired, 10*time.Millisecond)

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup never ran")
	}
	stop()

	require.NotPanics(t, startCleanup(context.Background(), deleteExpired, 0))
}
