// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CacheEntriesColumns holds the columns for the "cache_entries" table.
	CacheEntriesColumns = []*schema.Column{
		{Name: "cache_entry_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeInt64},
		{Name: "user_query", Type: field.TypeString, Size: 2147483647},
		{Name: "query_embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "generated_sql", Type: field.TypeString, Size: 2147483647},
		{Name: "schema_version", Type: field.TypeString},
		{Name: "cache_type", Type: field.TypeEnum, Enums: []string{"exact", "semantic"}, Default: "exact"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CacheEntriesTable holds the schema information for the "cache_entries" table.
	CacheEntriesTable = &schema.Table{
		Name:       "cache_entries",
		Columns:    CacheEntriesColumns,
		PrimaryKey: []*schema.Column{CacheEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cacheentry_tenant_id_user_query_schema_version",
				Unique:  true,
				Columns: []*schema.Column{CacheEntriesColumns[1], CacheEntriesColumns[2], CacheEntriesColumns[5]},
			},
			{
				Name:    "cacheentry_tenant_id_schema_version",
				Unique:  false,
				Columns: []*schema.Column{CacheEntriesColumns[1], CacheEntriesColumns[5]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "thread_id", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeJSON},
		{Name: "node", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
	}
	// InteractionsColumns holds the columns for the "interactions" table.
	InteractionsColumns = []*schema.Column{
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "trace_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeInt64},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "generated_sql", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "execution_status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "error_type", Type: field.TypeString, Nullable: true},
		{Name: "tables_used", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// InteractionsTable holds the schema information for the "interactions" table.
	InteractionsTable = &schema.Table{
		Name:       "interactions",
		Columns:    InteractionsColumns,
		PrimaryKey: []*schema.Column{InteractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "interactions_query_sessions_interactions",
				Columns:    []*schema.Column{InteractionsColumns[11]},
				RefColumns: []*schema.Column{QuerySessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "interaction_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[2], InteractionsColumns[9]},
			},
			{
				Name:    "interaction_execution_status",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[6]},
			},
		},
	}
	// QueryPairsColumns holds the columns for the "query_pairs" table.
	QueryPairsColumns = []*schema.Column{
		{Name: "pair_id", Type: field.TypeString, Unique: true},
		{Name: "signature_key", Type: field.TypeString},
		{Name: "tenant_id", Type: field.TypeInt64},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "sql_query", Type: field.TypeString, Size: 2147483647},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "roles", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"seeded", "verified", "tombstoned"}, Default: "seeded"},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "performance", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QueryPairsTable holds the schema information for the "query_pairs" table.
	QueryPairsTable = &schema.Table{
		Name:       "query_pairs",
		Columns:    QueryPairsColumns,
		PrimaryKey: []*schema.Column{QueryPairsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "querypair_signature_key_tenant_id",
				Unique:  true,
				Columns: []*schema.Column{QueryPairsColumns[1], QueryPairsColumns[2]},
			},
			{
				Name:    "querypair_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{QueryPairsColumns[2], QueryPairsColumns[7]},
			},
		},
	}
	// QuerySessionsColumns holds the columns for the "query_sessions" table.
	QuerySessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeInt64},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "awaiting_clarification", "completed", "failed", "cancelled", "timed_out"}, Default: "pending"},
		{Name: "final_sql", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "result_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "final_answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "clarification_question", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "clarification_answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "requeue_count", Type: field.TypeInt, Default: 0},
		{Name: "trace_id", Type: field.TypeString, Nullable: true},
		{Name: "schema_snapshot_id", Type: field.TypeString, Nullable: true},
		{Name: "page_size", Type: field.TypeInt, Nullable: true},
		{Name: "page_token", Type: field.TypeString, Nullable: true},
		{Name: "seed", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// QuerySessionsTable holds the schema information for the "query_sessions" table.
	QuerySessionsTable = &schema.Table{
		Name:       "query_sessions",
		Columns:    QuerySessionsColumns,
		PrimaryKey: []*schema.Column{QuerySessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "querysession_status",
				Unique:  false,
				Columns: []*schema.Column{QuerySessionsColumns[3]},
			},
			{
				Name:    "querysession_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{QuerySessionsColumns[1]},
			},
			{
				Name:    "querysession_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuerySessionsColumns[3], QuerySessionsColumns[18]},
			},
			{
				Name:    "querysession_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{QuerySessionsColumns[3], QuerySessionsColumns[19]},
			},
			{
				Name:    "querysession_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{QuerySessionsColumns[3], QuerySessionsColumns[21]},
			},
			{
				Name:    "querysession_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{QuerySessionsColumns[22]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CacheEntriesTable,
		CheckpointsTable,
		InteractionsTable,
		QueryPairsTable,
		QuerySessionsTable,
	}
)

func init() {
	InteractionsTable.ForeignKeys[0].RefTable = QuerySessionsTable
}
