package clipdata

import "context"

//go:generate mockgen -source=$GOFILE -package mock_clipdata -destination=test/mock/$GOFILE

// Fetcher retrieves a remote resource in one blocking call.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// AssetStore materializes a remote flag image locally and returns its relative filename.
// An empty filename with a nil error means the URL was not eligible.
type AssetStore interface {
	Materialize(ctx context.Context, url string, code string) (string, error)
}

// Observer receives per-item pipeline events. Calls are synchronous, in processing order.
type Observer interface {
	OnRecordDropped(code string, reason string)
	OnUnknownRegion(code string)
	OnAssetMaterialized(code string, filename string)
	OnAssetFailed(code string, err error)
	OnFileExtracted(name string, added int)
	OnFileSkipped(name string)
	OnFileFailed(name string, err error)
}
