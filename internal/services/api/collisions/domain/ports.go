package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Query(ctx context.Context, in QueryInput) (QueryResult, error)
	Summarize(ctx context.Context, in QueryInput) (SummaryResult, error)
	Parse(ctx context.Context, in ParseInput) (ParseResult, error)
	Options(ctx context.Context, column string) (OptionsResult, error)
	Columns(ctx context.Context) (ColumnsResult, error)
}
