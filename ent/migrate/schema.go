// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentExecutionsColumns holds the columns for the "agent_executions" table.
	AgentExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "case_id", Type: field.TypeString},
	}
	// AgentExecutionsTable holds the schema information for the "agent_executions" table.
	AgentExecutionsTable = &schema.Table{
		Name:       "agent_executions",
		Columns:    AgentExecutionsColumns,
		PrimaryKey: []*schema.Column{AgentExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_executions_cases_agent_executions",
				Columns:    []*schema.Column{AgentExecutionsColumns[12]},
				RefColumns: []*schema.Column{CasesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentexecution_case_id",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[12]},
			},
			{
				Name:    "agentexecution_agent_name_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[1], AgentExecutionsColumns[11]},
			},
			{
				Name:    "agentexecution_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[11]},
			},
		},
	}
	// AgentPromptsColumns holds the columns for the "agent_prompts" table.
	AgentPromptsColumns = []*schema.Column{
		{Name: "prompt_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "version", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "modified_by", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// AgentPromptsTable holds the schema information for the "agent_prompts" table.
	AgentPromptsTable = &schema.Table{
		Name:       "agent_prompts",
		Columns:    AgentPromptsColumns,
		PrimaryKey: []*schema.Column{AgentPromptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentprompt_agent_name_version",
				Unique:  true,
				Columns: []*schema.Column{AgentPromptsColumns[1], AgentPromptsColumns[2]},
			},
			{
				Name:    "agentprompt_agent_name_is_active",
				Unique:  false,
				Columns: []*schema.Column{AgentPromptsColumns[1], AgentPromptsColumns[6]},
			},
		},
	}
	// ApprovalsColumns holds the columns for the "approvals" table.
	ApprovalsColumns = []*schema.Column{
		{Name: "approval_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "autonomy_level", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "expired"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "decided_by", Type: field.TypeString, Nullable: true},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "case_id", Type: field.TypeString},
	}
	// ApprovalsTable holds the schema information for the "approvals" table.
	ApprovalsTable = &schema.Table{
		Name:       "approvals",
		Columns:    ApprovalsColumns,
		PrimaryKey: []*schema.Column{ApprovalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "approvals_cases_approvals",
				Columns:    []*schema.Column{ApprovalsColumns[10]},
				RefColumns: []*schema.Column{CasesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "approval_status",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[4]},
			},
			{
				Name:    "approval_case_id_status",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[10], ApprovalsColumns[4]},
			},
			{
				Name:    "approval_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ApprovalsColumns[4], ApprovalsColumns[6]},
			},
		},
	}
	// AuditStepsColumns holds the columns for the "audit_steps" table.
	AuditStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "seq", Type: field.TypeInt},
		{Name: "version", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "agent_role", Type: field.TypeString},
		{Name: "agent_model", Type: field.TypeString},
		{Name: "prompt_version", Type: field.TypeString},
		{Name: "autonomy_level", Type: field.TypeString},
		{Name: "inputs", Type: field.TypeJSON, Nullable: true},
		{Name: "plan", Type: field.TypeJSON, Nullable: true},
		{Name: "observations", Type: field.TypeJSON, Nullable: true},
		{Name: "outputs", Type: field.TypeJSON, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "prev_hash", Type: field.TypeString, Nullable: true},
		{Name: "hash", Type: field.TypeString},
		{Name: "signature", Type: field.TypeString, Nullable: true},
		{Name: "case_id", Type: field.TypeString},
	}
	// AuditStepsTable holds the schema information for the "audit_steps" table.
	AuditStepsTable = &schema.Table{
		Name:       "audit_steps",
		Columns:    AuditStepsColumns,
		PrimaryKey: []*schema.Column{AuditStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_steps_cases_audit_steps",
				Columns:    []*schema.Column{AuditStepsColumns[20]},
				RefColumns: []*schema.Column{CasesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditstep_case_id_seq",
				Unique:  true,
				Columns: []*schema.Column{AuditStepsColumns[20], AuditStepsColumns[1]},
			},
			{
				Name:    "auditstep_case_id",
				Unique:  false,
				Columns: []*schema.Column{AuditStepsColumns[20]},
			},
		},
	}
	// CasesColumns holds the columns for the "cases" table.
	CasesColumns = []*schema.Column{
		{Name: "case_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "severity", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "analyzing", "completed", "failed"}, Default: "pending"},
		{Name: "current_step", Type: field.TypeString, Nullable: true},
		{Name: "autonomy_level", Type: field.TypeString, Nullable: true},
		{Name: "entities", Type: field.TypeJSON, Nullable: true},
		{Name: "threat_classification", Type: field.TypeString, Nullable: true},
		{Name: "actual_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "actual_tokens", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// CasesTable holds the schema information for the "cases" table.
	CasesTable = &schema.Table{
		Name:       "cases",
		Columns:    CasesColumns,
		PrimaryKey: []*schema.Column{CasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "caserecord_status",
				Unique:  false,
				Columns: []*schema.Column{CasesColumns[4]},
			},
			{
				Name:    "caserecord_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{CasesColumns[4], CasesColumns[11]},
			},
		},
	}
	// GraphEdgesColumns holds the columns for the "graph_edges" table.
	GraphEdgesColumns = []*schema.Column{
		{Name: "edge_id", Type: field.TypeString, Unique: true},
		{Name: "src_id", Type: field.TypeString},
		{Name: "dst_id", Type: field.TypeString},
		{Name: "rel_type", Type: field.TypeEnum, Enums: []string{"TRIGGERED_BY", "OBSERVED_IN", "RELATES_TO"}},
		{Name: "props", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GraphEdgesTable holds the schema information for the "graph_edges" table.
	GraphEdgesTable = &schema.Table{
		Name:       "graph_edges",
		Columns:    GraphEdgesColumns,
		PrimaryKey: []*schema.Column{GraphEdgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "graphedge_src_id_dst_id_rel_type",
				Unique:  true,
				Columns: []*schema.Column{GraphEdgesColumns[1], GraphEdgesColumns[2], GraphEdgesColumns[3]},
			},
			{
				Name:    "graphedge_src_id",
				Unique:  false,
				Columns: []*schema.Column{GraphEdgesColumns[1]},
			},
			{
				Name:    "graphedge_dst_id",
				Unique:  false,
				Columns: []*schema.Column{GraphEdgesColumns[2]},
			},
		},
	}
	// GraphNodesColumns holds the columns for the "graph_nodes" table.
	GraphNodesColumns = []*schema.Column{
		{Name: "node_id", Type: field.TypeString, Unique: true},
		{Name: "label", Type: field.TypeEnum, Enums: []string{"Case", "Rule", "Entity", "KnowledgeItem"}},
		{Name: "props", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GraphNodesTable holds the schema information for the "graph_nodes" table.
	GraphNodesTable = &schema.Table{
		Name:       "graph_nodes",
		Columns:    GraphNodesColumns,
		PrimaryKey: []*schema.Column{GraphNodesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "graphnode_label",
				Unique:  false,
				Columns: []*schema.Column{GraphNodesColumns[1]},
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "report_id", Type: field.TypeString, Unique: true},
		{Name: "report_type", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "file_path", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "case_id", Type: field.TypeString},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reports_cases_reports",
				Columns:    []*schema.Column{ReportsColumns[5]},
				RefColumns: []*schema.Column{CasesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "report_case_id_report_type",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[5], ReportsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentExecutionsTable,
		AgentPromptsTable,
		ApprovalsTable,
		AuditStepsTable,
		CasesTable,
		GraphEdgesTable,
		GraphNodesTable,
		ReportsTable,
	}
)

func init() {
	AgentExecutionsTable.ForeignKeys[0].RefTable = CasesTable
	AgentExecutionsTable.Annotation = &entsql.Annotation{
		Table: "agent_executions",
	}
	AgentPromptsTable.Annotation = &entsql.Annotation{
		Table: "agent_prompts",
	}
	ApprovalsTable.ForeignKeys[0].RefTable = CasesTable
	ApprovalsTable.Annotation = &entsql.Annotation{
		Table: "approvals",
	}
	AuditStepsTable.ForeignKeys[0].RefTable = CasesTable
	AuditStepsTable.Annotation = &entsql.Annotation{
		Table: "audit_steps",
	}
	CasesTable.Annotation = &entsql.Annotation{
		Table: "cases",
	}
	GraphEdgesTable.Annotation = &entsql.Annotation{
		Table: "graph_edges",
	}
	GraphNodesTable.Annotation = &entsql.Annotation{
		Table: "graph_nodes",
	}
	ReportsTable.ForeignKeys[0].RefTable = CasesTable
	ReportsTable.Annotation = &entsql.Annotation{
		Table: "reports",
	}
}
