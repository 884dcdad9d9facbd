package supabase

import "github.com/supabase-community/postgrest-go"

// Client источник PostgREST запросов. Реализуется *supabase.Client и *postgrest.Client
type Client interface {
	From(table string) *postgrest.QueryBuilder
}
