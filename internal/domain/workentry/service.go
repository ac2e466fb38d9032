package workentry

import "context"

// WorkEntryService defines the entry ingestion operations exposed over HTTP.
type WorkEntryService interface {
	Create(ctx context.Context, req CreateWorkEntryRequest) (*WorkEntryResponse, error)
	Get(ctx context.Context, id string) (*WorkEntryResponse, error)
	List(ctx context.Context, req ListWorkEntriesRequest) ([]WorkEntryResponse, error)
}
