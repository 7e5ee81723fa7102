package repositories

import "context"

// ReceiptArchiveRepository persists receipt payloads for audit. Last writer wins.
type ReceiptArchiveRepository interface {
	SaveJSON(ctx context.Context, subDir, fileName, content string) error
}
