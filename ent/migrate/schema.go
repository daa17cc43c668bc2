// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CampaignsColumns holds the columns for the "campaigns" table.
	CampaignsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"immediate", "scheduled", "sequence"}, Default: "immediate"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "active", "paused", "completed"}, Default: "draft"},
		{Name: "scheduled_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "message_interval_seconds", Type: field.TypeInt, Default: 0},
		{Name: "target_filter", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CampaignsTable holds the schema information for the "campaigns" table.
	CampaignsTable = &schema.Table{
		Name:       "campaigns",
		Columns:    CampaignsColumns,
		PrimaryKey: []*schema.Column{CampaignsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "campaign_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[1]},
			},
			{
				Name:    "campaign_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[1], CampaignsColumns[4]},
			},
		},
	}
	// CampaignStepsColumns holds the columns for the "campaign_steps" table.
	CampaignStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "campaign_id", Type: field.TypeString},
		{Name: "step_order", Type: field.TypeInt},
		{Name: "channel_kind", Type: field.TypeEnum, Enums: []string{"email_smtp", "email_api", "sms", "whatsapp_web", "whatsapp_business", "telegram", "voice"}},
		{Name: "channel_config_id", Type: field.TypeString},
		{Name: "template_id", Type: field.TypeString},
		{Name: "delay_days", Type: field.TypeInt, Default: 0},
		{Name: "delay_hours", Type: field.TypeInt, Default: 0},
		{Name: "delay_minutes", Type: field.TypeInt, Default: 0},
		{Name: "send_time_start", Type: field.TypeString, Nullable: true},
		{Name: "send_time_end", Type: field.TypeString, Nullable: true},
	}
	// CampaignStepsTable holds the schema information for the "campaign_steps" table.
	CampaignStepsTable = &schema.Table{
		Name:       "campaign_steps",
		Columns:    CampaignStepsColumns,
		PrimaryKey: []*schema.Column{CampaignStepsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "campaignstep_campaign_id_step_order",
				Unique:  true,
				Columns: []*schema.Column{CampaignStepsColumns[2], CampaignStepsColumns[3]},
			},
			{
				Name:    "campaignstep_campaign_id",
				Unique:  false,
				Columns: []*schema.Column{CampaignStepsColumns[2]},
			},
		},
	}
	// ChannelConfigsColumns holds the columns for the "channel_configs" table.
	ChannelConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"email_smtp", "email_api", "sms", "whatsapp_web", "whatsapp_business", "telegram", "voice"}},
		{Name: "name", Type: field.TypeString},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "is_default", Type: field.TypeBool, Default: false},
		{Name: "credentials", Type: field.TypeJSON, Nullable: true},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChannelConfigsTable holds the schema information for the "channel_configs" table.
	ChannelConfigsTable = &schema.Table{
		Name:       "channel_configs",
		Columns:    ChannelConfigsColumns,
		PrimaryKey: []*schema.Column{ChannelConfigsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "channelconfig_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{ChannelConfigsColumns[1]},
			},
			{
				Name:    "channelconfig_tenant_id_kind",
				Unique:  false,
				Columns: []*schema.Column{ChannelConfigsColumns[1], ChannelConfigsColumns[2]},
			},
			{
				Name:    "channelconfig_tenant_id_active",
				Unique:  false,
				Columns: []*schema.Column{ChannelConfigsColumns[1], ChannelConfigsColumns[4]},
			},
		},
	}
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "lead_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "position", Type: field.TypeString, Nullable: true},
		{Name: "is_primary", Type: field.TypeBool, Default: false},
		{Name: "unsubscribed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contact_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[1]},
			},
			{
				Name:    "contact_lead_id",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[2]},
			},
			{
				Name:    "contact_tenant_id_email",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[1], ContactsColumns[4]},
			},
		},
	}
	// ContactAttemptsColumns holds the columns for the "contact_attempts" table.
	ContactAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "campaign_id", Type: field.TypeString, Nullable: true},
		{Name: "campaign_step_id", Type: field.TypeString, Nullable: true},
		{Name: "recipient_id", Type: field.TypeString, Nullable: true},
		{Name: "lead_id", Type: field.TypeString, Nullable: true},
		{Name: "contact_id", Type: field.TypeString, Nullable: true},
		{Name: "prospect_id", Type: field.TypeString, Nullable: true},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "channel_kind", Type: field.TypeEnum, Enums: []string{"email_smtp", "email_api", "sms", "whatsapp_web", "whatsapp_business", "telegram", "voice"}},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"outbound", "inbound"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "sent", "delivered", "failed", "bounced"}},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "external_id", Type: field.TypeString, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "delivered_at", Type: field.TypeTime, Nullable: true},
		{Name: "opened_at", Type: field.TypeTime, Nullable: true},
		{Name: "clicked_at", Type: field.TypeTime, Nullable: true},
		{Name: "replied_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ContactAttemptsTable holds the schema information for the "contact_attempts" table.
	ContactAttemptsTable = &schema.Table{
		Name:       "contact_attempts",
		Columns:    ContactAttemptsColumns,
		PrimaryKey: []*schema.Column{ContactAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contactattempt_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContactAttemptsColumns[1], ContactAttemptsColumns[21]},
			},
			{
				Name:    "contactattempt_campaign_id",
				Unique:  false,
				Columns: []*schema.Column{ContactAttemptsColumns[2]},
			},
			{
				Name:    "contactattempt_recipient_id",
				Unique:  false,
				Columns: []*schema.Column{ContactAttemptsColumns[4]},
			},
			{
				Name:    "contactattempt_conversation_id_direction",
				Unique:  false,
				Columns: []*schema.Column{ContactAttemptsColumns[8], ContactAttemptsColumns[10]},
			},
			{
				Name:    "contactattempt_external_id",
				Unique:  false,
				Columns: []*schema.Column{ContactAttemptsColumns[14]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "channel_kind", Type: field.TypeEnum, Enums: []string{"email_smtp", "email_api", "sms", "whatsapp_web", "whatsapp_business", "telegram", "voice"}},
		{Name: "channel_config_id", Type: field.TypeString},
		{Name: "contact_id", Type: field.TypeString, Nullable: true},
		{Name: "prospect_id", Type: field.TypeString, Nullable: true},
		{Name: "lead_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "closed"}, Default: "open"},
		{Name: "last_watermark", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_channel_config_id_status",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[3], ConversationsColumns[7]},
			},
			{
				Name:    "conversation_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1]},
			},
			{
				Name:    "conversation_channel_kind_contact_id",
				Unique:  true,
				Columns: []*schema.Column{ConversationsColumns[2], ConversationsColumns[4]},
				Annotation: &entsql.IndexAnnotation{
					Where: "contact_id IS NOT NULL AND status = 'open'",
				},
			},
			{
				Name:    "conversation_channel_kind_prospect_id",
				Unique:  true,
				Columns: []*schema.Column{ConversationsColumns[2], ConversationsColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "prospect_id IS NOT NULL AND status = 'open'",
				},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"campaign_step", "scrape", "poll_replies", "webhook", "cleanup"}},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 5},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "dead"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "run_after", Type: field.TypeTime},
		{Name: "lease_until", Type: field.TypeTime, Nullable: true},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_run_after",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5], JobsColumns[8]},
			},
			{
				Name:    "job_status_priority_run_after",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5], JobsColumns[4], JobsColumns[8]},
			},
			{
				Name:    "job_kind_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[5]},
			},
			{
				Name:    "job_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "company_name", Type: field.TypeString},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "industry", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lead_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[1]},
			},
			{
				Name:    "lead_tenant_id_industry",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[1], LeadsColumns[4]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "conversation_id", Type: field.TypeString},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"outbound", "inbound"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "external_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[2], MessagesColumns[6]},
			},
			{
				Name:    "message_external_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[5]},
			},
		},
	}
	// ProspectsColumns holds the columns for the "prospects" table.
	ProspectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "group_id", Type: field.TypeString, Nullable: true},
		{Name: "channel_config_id", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString},
		{Name: "username", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "telegram_user_id", Type: field.TypeInt64, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "messaged", "replied", "converted"}, Default: "pending"},
		{Name: "last_messaged_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_replied_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_external_id", Type: field.TypeString, Nullable: true},
		{Name: "converted_lead_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProspectsTable holds the schema information for the "prospects" table.
	ProspectsTable = &schema.Table{
		Name:       "prospects",
		Columns:    ProspectsColumns,
		PrimaryKey: []*schema.Column{ProspectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prospect_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[1]},
			},
			{
				Name:    "prospect_group_id",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[2]},
			},
			{
				Name:    "prospect_channel_config_id_status",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[3], ProspectsColumns[8]},
			},
			{
				Name:    "prospect_telegram_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[7]},
			},
			{
				Name:    "prospect_phone",
				Unique:  false,
				Columns: []*schema.Column{ProspectsColumns[6]},
			},
		},
	}
	// ProspectGroupsColumns holds the columns for the "prospect_groups" table.
	ProspectGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "channel_config_id", Type: field.TypeString},
		{Name: "external_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "member_count", Type: field.TypeInt, Default: 0},
		{Name: "imported_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProspectGroupsTable holds the schema information for the "prospect_groups" table.
	ProspectGroupsTable = &schema.Table{
		Name:       "prospect_groups",
		Columns:    ProspectGroupsColumns,
		PrimaryKey: []*schema.Column{ProspectGroupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prospectgroup_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{ProspectGroupsColumns[1]},
			},
			{
				Name:    "prospectgroup_channel_config_id_external_id",
				Unique:  true,
				Columns: []*schema.Column{ProspectGroupsColumns[2], ProspectGroupsColumns[3]},
			},
		},
	}
	// RecipientsColumns holds the columns for the "recipients" table.
	RecipientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "campaign_id", Type: field.TypeString},
		{Name: "lead_id", Type: field.TypeString, Nullable: true},
		{Name: "contact_id", Type: field.TypeString, Nullable: true},
		{Name: "prospect_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed", "unsubscribed", "replied"}, Default: "pending"},
		{Name: "current_step", Type: field.TypeInt, Default: 1},
		{Name: "next_action_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RecipientsTable holds the schema information for the "recipients" table.
	RecipientsTable = &schema.Table{
		Name:       "recipients",
		Columns:    RecipientsColumns,
		PrimaryKey: []*schema.Column{RecipientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recipient_campaign_id_status",
				Unique:  false,
				Columns: []*schema.Column{RecipientsColumns[2], RecipientsColumns[6]},
			},
			{
				Name:    "recipient_campaign_id_contact_id",
				Unique:  true,
				Columns: []*schema.Column{RecipientsColumns[2], RecipientsColumns[4]},
				Annotation: &entsql.IndexAnnotation{
					Where: "contact_id IS NOT NULL",
				},
			},
			{
				Name:    "recipient_campaign_id_prospect_id",
				Unique:  true,
				Columns: []*schema.Column{RecipientsColumns[2], RecipientsColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "prospect_id IS NOT NULL",
				},
			},
			{
				Name:    "recipient_prospect_id",
				Unique:  false,
				Columns: []*schema.Column{RecipientsColumns[5]},
			},
			{
				Name:    "recipient_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{RecipientsColumns[1]},
			},
		},
	}
	// TemplatesColumns holds the columns for the "templates" table.
	TemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "channel_kind", Type: field.TypeEnum, Enums: []string{"email_smtp", "email_api", "sms", "whatsapp_web", "whatsapp_business", "telegram", "voice"}},
		{Name: "name", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "use_ai", Type: field.TypeBool, Default: false},
		{Name: "variations", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TemplatesTable holds the schema information for the "templates" table.
	TemplatesTable = &schema.Table{
		Name:       "templates",
		Columns:    TemplatesColumns,
		PrimaryKey: []*schema.Column{TemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "template_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{TemplatesColumns[1]},
			},
			{
				Name:    "template_tenant_id_channel_kind",
				Unique:  false,
				Columns: []*schema.Column{TemplatesColumns[1], TemplatesColumns[2]},
			},
		},
	}
	// TenantsColumns holds the columns for the "tenants" table.
	TenantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TenantsTable holds the schema information for the "tenants" table.
	TenantsTable = &schema.Table{
		Name:       "tenants",
		Columns:    TenantsColumns,
		PrimaryKey: []*schema.Column{TenantsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CampaignsTable,
		CampaignStepsTable,
		ChannelConfigsTable,
		ContactsTable,
		ContactAttemptsTable,
		ConversationsTable,
		JobsTable,
		LeadsTable,
		MessagesTable,
		ProspectsTable,
		ProspectGroupsTable,
		RecipientsTable,
		TemplatesTable,
		TenantsTable,
	}
)

func init() {
}
