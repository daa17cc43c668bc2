// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/outflowhq/outflow/ent/campaign"
	"github.com/outflowhq/outflow/ent/campaignstep"
	"github.com/outflowhq/outflow/ent/channelconfig"
	"github.com/outflowhq/outflow/ent/contact"
	"github.com/outflowhq/outflow/ent/contactattempt"
	"github.com/outflowhq/outflow/ent/conversation"
	"github.com/outflowhq/outflow/ent/job"
	"github.com/outflowhq/outflow/ent/lead"
	"github.com/outflowhq/outflow/ent/message"
	"github.com/outflowhq/outflow/ent/predicate"
	"github.com/outflowhq/outflow/ent/prospect"
	"github.com/outflowhq/outflow/ent/prospectgroup"
	"github.com/outflowhq/outflow/ent/recipient"
	"github.com/outflowhq/outflow/ent/template"
	"github.com/outflowhq/outflow/ent/tenant"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCampaign       = "Campaign"
	TypeCampaignStep   = "CampaignStep"
	TypeChannelConfig  = "ChannelConfig"
	TypeContact        = "Contact"
	TypeContactAttempt = "ContactAttempt"
	TypeConversation   = "Conversation"
	TypeJob            = "Job"
	TypeLead           = "Lead"
	TypeMessage        = "Message"
	TypeProspect       = "Prospect"
	TypeProspectGroup  = "ProspectGroup"
	TypeRecipient      = "Recipient"
	TypeTemplate       = "Template"
	TypeTenant         = "Tenant"
)

// CampaignMutation represents an operation that mutates the Campaign nodes in the graph.
type CampaignMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	tenant_id                   *string
	name                        *string
	_type                       *campaign.Type
	status                      *campaign.Status
	scheduled_at                *time.Time
	started_at                  *time.Time
	completed_at                *time.Time
	message_interval_seconds    *int
	addmessage_interval_seconds *int
	target_filter               *map[string]interface{}
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*Campaign, error)
	predicates                  []predicate.Campaign
}

var _ ent.Mutation = (*CampaignMutation)(nil)

// campaignOption allows management of the mutation configuration using functional options.
type campaignOption func(*CampaignMutation)

// newCampaignMutation creates new mutation for the Campaign entity.
func newCampaignMutation(c config, op Op, opts ...campaignOption) *CampaignMutation {
	m := &CampaignMutation{
		config:        c,
		op:            op,
		typ:           TypeCampaign,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCampaignID sets the ID field of the mutation.
func withCampaignID(id string) campaignOption {
	return func(m *CampaignMutation) {
		var (
			err   error
			once  sync.Once
			value *Campaign
		)
		m.oldValue = func(ctx context.Context) (*Campaign, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Campaign.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCampaign sets the old Campaign of the mutation.
func withCampaign(node *Campaign) campaignOption {
	return func(m *CampaignMutation) {
		m.oldValue = func(context.Context) (*Campaign, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CampaignMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CampaignMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Campaign entities.
func (m *CampaignMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CampaignMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CampaignMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Campaign.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *CampaignMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *CampaignMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *CampaignMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetName sets the "name" field.
func (m *CampaignMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CampaignMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CampaignMutation) ResetName() {
	m.name = nil
}

// SetType sets the "type" field.
func (m *CampaignMutation) SetType(c campaign.Type) {
	m._type = &c
}

// GetType returns the value of the "type" field in the mutation.
func (m *CampaignMutation) GetType() (r campaign.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldType(ctx context.Context) (v campaign.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *CampaignMutation) ResetType() {
	m._type = nil
}

// SetStatus sets the "status" field.
func (m *CampaignMutation) SetStatus(c campaign.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CampaignMutation) Status() (r campaign.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStatus(ctx context.Context) (v campaign.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CampaignMutation) ResetStatus() {
	m.status = nil
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *CampaignMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *CampaignMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldScheduledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ClearScheduledAt clears the value of the "scheduled_at" field.
func (m *CampaignMutation) ClearScheduledAt() {
	m.scheduled_at = nil
	m.clearedFields[campaign.FieldScheduledAt] = struct{}{}
}

// ScheduledAtCleared returns if the "scheduled_at" field was cleared in this mutation.
func (m *CampaignMutation) ScheduledAtCleared() bool {
	_, ok := m.clearedFields[campaign.FieldScheduledAt]
	return ok
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *CampaignMutation) ResetScheduledAt() {
	m.scheduled_at = nil
	delete(m.clearedFields, campaign.FieldScheduledAt)
}

// SetStartedAt sets the "started_at" field.
func (m *CampaignMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *CampaignMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *CampaignMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[campaign.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *CampaignMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[campaign.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *CampaignMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, campaign.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *CampaignMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CampaignMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CampaignMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[campaign.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CampaignMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[campaign.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CampaignMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, campaign.FieldCompletedAt)
}

// SetMessageIntervalSeconds sets the "message_interval_seconds" field.
func (m *CampaignMutation) SetMessageIntervalSeconds(i int) {
	m.message_interval_seconds = &i
	m.addmessage_interval_seconds = nil
}

// MessageIntervalSeconds returns the value of the "message_interval_seconds" field in the mutation.
func (m *CampaignMutation) MessageIntervalSeconds() (r int, exists bool) {
	v := m.message_interval_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageIntervalSeconds returns the old "message_interval_seconds" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldMessageIntervalSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageIntervalSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageIntervalSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageIntervalSeconds: %w", err)
	}
	return oldValue.MessageIntervalSeconds, nil
}

// AddMessageIntervalSeconds adds i to the "message_interval_seconds" field.
func (m *CampaignMutation) AddMessageIntervalSeconds(i int) {
	if m.addmessage_interval_seconds != nil {
		*m.addmessage_interval_seconds += i
	} else {
		m.addmessage_interval_seconds = &i
	}
}

// AddedMessageIntervalSeconds returns the value that was added to the "message_interval_seconds" field in this mutation.
func (m *CampaignMutation) AddedMessageIntervalSeconds() (r int, exists bool) {
	v := m.addmessage_interval_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageIntervalSeconds resets all changes to the "message_interval_seconds" field.
func (m *CampaignMutation) ResetMessageIntervalSeconds() {
	m.message_interval_seconds = nil
	m.addmessage_interval_seconds = nil
}

// SetTargetFilter sets the "target_filter" field.
func (m *CampaignMutation) SetTargetFilter(value map[string]interface{}) {
	m.target_filter = &value
}

// TargetFilter returns the value of the "target_filter" field in the mutation.
func (m *CampaignMutation) TargetFilter() (r map[string]interface{}, exists bool) {
	v := m.target_filter
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetFilter returns the old "target_filter" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldTargetFilter(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetFilter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetFilter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetFilter: %w", err)
	}
	return oldValue.TargetFilter, nil
}

// ClearTargetFilter clears the value of the "target_filter" field.
func (m *CampaignMutation) ClearTargetFilter() {
	m.target_filter = nil
	m.clearedFields[campaign.FieldTargetFilter] = struct{}{}
}

// TargetFilterCleared returns if the "target_filter" field was cleared in this mutation.
func (m *CampaignMutation) TargetFilterCleared() bool {
	_, ok := m.clearedFields[campaign.FieldTargetFilter]
	return ok
}

// ResetTargetFilter resets all changes to the "target_filter" field.
func (m *CampaignMutation) ResetTargetFilter() {
	m.target_filter = nil
	delete(m.clearedFields, campaign.FieldTargetFilter)
}

// SetCreatedAt sets the "created_at" field.
func (m *CampaignMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CampaignMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CampaignMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CampaignMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CampaignMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CampaignMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CampaignMutation builder.
func (m *CampaignMutation) Where(ps ...predicate.Campaign) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CampaignMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CampaignMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Campaign, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CampaignMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CampaignMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Campaign).
func (m *CampaignMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CampaignMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.tenant_id != nil {
		fields = append(fields, campaign.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, campaign.FieldName)
	}
	if m._type != nil {
		fields = append(fields, campaign.FieldType)
	}
	if m.status != nil {
		fields = append(fields, campaign.FieldStatus)
	}
	if m.scheduled_at != nil {
		fields = append(fields, campaign.FieldScheduledAt)
	}
	if m.started_at != nil {
		fields = append(fields, campaign.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, campaign.FieldCompletedAt)
	}
	if m.message_interval_seconds != nil {
		fields = append(fields, campaign.FieldMessageIntervalSeconds)
	}
	if m.target_filter != nil {
		fields = append(fields, campaign.FieldTargetFilter)
	}
	if m.created_at != nil {
		fields = append(fields, campaign.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, campaign.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CampaignMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldTenantID:
		return m.TenantID()
	case campaign.FieldName:
		return m.Name()
	case campaign.FieldType:
		return m.GetType()
	case campaign.FieldStatus:
		return m.Status()
	case campaign.FieldScheduledAt:
		return m.ScheduledAt()
	case campaign.FieldStartedAt:
		return m.StartedAt()
	case campaign.FieldCompletedAt:
		return m.CompletedAt()
	case campaign.FieldMessageIntervalSeconds:
		return m.MessageIntervalSeconds()
	case campaign.FieldTargetFilter:
		return m.TargetFilter()
	case campaign.FieldCreatedAt:
		return m.CreatedAt()
	case campaign.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CampaignMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case campaign.FieldTenantID:
		return m.OldTenantID(ctx)
	case campaign.FieldName:
		return m.OldName(ctx)
	case campaign.FieldType:
		return m.OldType(ctx)
	case campaign.FieldStatus:
		return m.OldStatus(ctx)
	case campaign.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	case campaign.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case campaign.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case campaign.FieldMessageIntervalSeconds:
		return m.OldMessageIntervalSeconds(ctx)
	case campaign.FieldTargetFilter:
		return m.OldTargetFilter(ctx)
	case campaign.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case campaign.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Campaign field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) SetField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case campaign.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case campaign.FieldType:
		v, ok := value.(campaign.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case campaign.FieldStatus:
		v, ok := value.(campaign.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case campaign.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	case campaign.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case campaign.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case campaign.FieldMessageIntervalSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageIntervalSeconds(v)
		return nil
	case campaign.FieldTargetFilter:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetFilter(v)
		return nil
	case campaign.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case campaign.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CampaignMutation) AddedFields() []string {
	var fields []string
	if m.addmessage_interval_seconds != nil {
		fields = append(fields, campaign.FieldMessageIntervalSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CampaignMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldMessageIntervalSeconds:
		return m.AddedMessageIntervalSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) AddField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldMessageIntervalSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageIntervalSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CampaignMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(campaign.FieldScheduledAt) {
		fields = append(fields, campaign.FieldScheduledAt)
	}
	if m.FieldCleared(campaign.FieldStartedAt) {
		fields = append(fields, campaign.FieldStartedAt)
	}
	if m.FieldCleared(campaign.FieldCompletedAt) {
		fields = append(fields, campaign.FieldCompletedAt)
	}
	if m.FieldCleared(campaign.FieldTargetFilter) {
		fields = append(fields, campaign.FieldTargetFilter)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CampaignMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CampaignMutation) ClearField(name string) error {
	switch name {
	case campaign.FieldScheduledAt:
		m.ClearScheduledAt()
		return nil
	case campaign.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case campaign.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case campaign.FieldTargetFilter:
		m.ClearTargetFilter()
		return nil
	}
	return fmt.Errorf("unknown Campaign nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CampaignMutation) ResetField(name string) error {
	switch name {
	case campaign.FieldTenantID:
		m.ResetTenantID()
		return nil
	case campaign.FieldName:
		m.ResetName()
		return nil
	case campaign.FieldType:
		m.ResetType()
		return nil
	case campaign.FieldStatus:
		m.ResetStatus()
		return nil
	case campaign.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	case campaign.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case campaign.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case campaign.FieldMessageIntervalSeconds:
		m.ResetMessageIntervalSeconds()
		return nil
	case campaign.FieldTargetFilter:
		m.ResetTargetFilter()
		return nil
	case campaign.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case campaign.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CampaignMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CampaignMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CampaignMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CampaignMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CampaignMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CampaignMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CampaignMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Campaign unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CampaignMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Campaign edge %s", name)
}

// CampaignStepMutation represents an operation that mutates the CampaignStep nodes in the graph.
type CampaignStepMutation struct {
	config
	op                Op
	typ               string
	id                *string
	tenant_id         *string
	campaign_id       *string
	step_order        *int
	addstep_order     *int
	channel_kind      *campaignstep.ChannelKind
	channel_config_id *string
	template_id       *string
	delay_days        *int
	adddelay_days     *int
	delay_hours       *int
	adddelay_hours    *int
	delay_minutes     *int
	adddelay_minutes  *int
	send_time_start   *string
	send_time_end     *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*CampaignStep, error)
	predicates        []predicate.CampaignStep
}

var _ ent.Mutation = (*CampaignStepMutation)(nil)

// campaignstepOption allows management of the mutation configuration using functional options.
type campaignstepOption func(*CampaignStepMutation)

// newCampaignStepMutation creates new mutation for the CampaignStep entity.
func newCampaignStepMutation(c config, op Op, opts ...campaignstepOption) *CampaignStepMutation {
	m := &CampaignStepMutation{
		config:        c,
		op:            op,
		typ:           TypeCampaignStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCampaignStepID sets the ID field of the mutation.
func withCampaignStepID(id string) campaignstepOption {
	return func(m *CampaignStepMutation) {
		var (
			err   error
			once  sync.Once
			value *CampaignStep
		)
		m.oldValue = func(ctx context.Context) (*CampaignStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CampaignStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCampaignStep sets the old CampaignStep of the mutation.
func withCampaignStep(node *CampaignStep) campaignstepOption {
	return func(m *CampaignStepMutation) {
		m.oldValue = func(context.Context) (*CampaignStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CampaignStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CampaignStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CampaignStep entities.
func (m *CampaignStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CampaignStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CampaignStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CampaignStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *CampaignStepMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *CampaignStepMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the CampaignStep entity.
// If the CampaignStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignStepMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *CampaignStepMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetCampaignID sets the "campaign_id" field.
func (m *CampaignStepMutation) SetCampaignID(s string) {
	m.campaign_id = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *CampaignStepMutation) CampaignID() (r string, exists bool) {
	v := m.campaign_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the CampaignStep entity.
// If the CampaignStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignStepMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *CampaignStepMutation) ResetCampaignID() {
	m.campaign_id = nil
}

// SetStepOrder sets the "step_order" field.
func (m *CampaignStepMutation) SetStepOrder(i int) {
	m.step_order = &i
	m.addstep_order = nil
}

// StepOrder returns the value of the "step_order" field in the mutation.
func (m *CampaignStepMutation) StepOrder() (r int, exists bool) {
	v := m.step_order
	if v == nil {
		return
	}
	return *v, true
}

// OldStepOrder returns the old "step_order" field's value of the CampaignStep entity.
// If the CampaignStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignStepMutation) OldStepOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepOrder: %w", err)
	}
	return oldValue.StepOrder, nil
}

// AddStepOrder adds i to the "step_order" field.
func (m *CampaignStepMutation) AddStepOrder(i int) {
	if m.addstep_order != nil {
		*m.addstep_order += i
	} else {
		m.addstep_order = &i
	}
}

// AddedStepOrder returns the value that was added to the "step_order" field in this mutation.
func (m *CampaignStepMutation) AddedStepOrder() (r int, exists bool) {
	v := m.addstep_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepOrder resets all changes to the "step_order" field.
func (m *CampaignStepMutation) ResetStepOrder() {
	m.step_order = nil
	m.addstep_order = nil
}

// SetChannelKind sets the "channel_kind" field.
func (m *CampaignStepMutation) SetChannelKind(ck campaignstep.ChannelKind) {
	m.channel_kind = &ck
}

// ChannelKind returns the value of the "channel_kind" field in the mutation.
func (m *CampaignStepMutation) ChannelKind() (r campaignstep.ChannelKind, exists bool) {
	v := m.channel_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelKind returns the old "channel_kind" field's value of the CampaignStep entity.
// If the CampaignStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignStepMutation) OldChannelKind(ctx context.Context) (v campaignstep.ChannelKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelKind: %w", err)
	}
	return oldValue.ChannelKind, nil
}

// ResetChannelKind resets all changes to the "channel_kind" field.
func (m *CampaignStepMutation) ResetChannelKind() {
	m.channel_kind = nil
}

// SetChannelConfigID sets the "channel_config_id" field.
func (m *CampaignStepMutation) SetChannelConfigID(s string) {
	m.channel_config_id = &s
}

// ChannelConfigID returns the value of the "channel_config_id" field in the mutation.
func (m *CampaignStepMutation) ChannelConfigID() (r string, exists bool) {
	v := m.channel_config_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelConfigID returns the old "channel_config_id" field's value of the CampaignStep entity.
// If the CampaignStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignStepMutation) OldChannelConfigID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelConfigID: %w", err)
	}
	return oldValue.ChannelConfigID, nil
}

// ResetChannelConfigID resets all changes to the "channel_config_id" field.
func (m *CampaignStepMutation) ResetChannelConfigID() {
	m.channel_config_id = nil
}

// SetTemplateID sets the "template_id" field.
func (m *CampaignStepMutation) SetTemplateID(s string) {
	m.template_id = &s
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *CampaignStepMutation) TemplateID() (r string, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the CampaignStep entity.
// If the CampaignStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignStepMutation) OldTemplateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *CampaignStepMutation) ResetTemplateID() {
	m.template_id = nil
}

// SetDelayDays sets the "delay_days" field.
func (m *CampaignStepMutation) SetDelayDays(i int) {
	m.delay_days = &i
	m.adddelay_days = nil
}

// DelayDays returns the value of the "delay_days" field in the mutation.
func (m *CampaignStepMutation) DelayDays() (r int, exists bool) {
	v := m.delay_days
	if v == nil {
		return
	}
	return *v, true
}

// OldDelayDays returns the old "delay_days" field's value of the CampaignStep entity.
// If the CampaignStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignStepMutation) OldDelayDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelayDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelayDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelayDays: %w", err)
	}
	return oldValue.DelayDays, nil
}

// AddDelayDays adds i to the "delay_days" field.
func (m *CampaignStepMutation) AddDelayDays(i int) {
	if m.adddelay_days != nil {
		*m.adddelay_days += i
	} else {
		m.adddelay_days = &i
	}
}

// AddedDelayDays returns the value that was added to the "delay_days" field in this mutation.
func (m *CampaignStepMutation) AddedDelayDays() (r int, exists bool) {
	v := m.adddelay_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetDelayDays resets all changes to the "delay_days" field.
func (m *CampaignStepMutation) ResetDelayDays() {
	m.delay_days = nil
	m.adddelay_days = nil
}

// SetDelayHours sets the "delay_hours" field.
func (m *CampaignStepMutation) SetDelayHours(i int) {
	m.delay_hours = &i
	m.adddelay_hours = nil
}

// DelayHours returns the value of the "delay_hours" field in the mutation.
func (m *CampaignStepMutation) DelayHours() (r int, exists bool) {
	v := m.delay_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldDelayHours returns the old "delay_hours" field's value of the CampaignStep entity.
// If the CampaignStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignStepMutation) OldDelayHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelayHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelayHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelayHours: %w", err)
	}
	return oldValue.DelayHours, nil
}

// AddDelayHours adds i to the "delay_hours" field.
func (m *CampaignStepMutation) AddDelayHours(i int) {
	if m.adddelay_hours != nil {
		*m.adddelay_hours += i
	} else {
		m.adddelay_hours = &i
	}
}

// AddedDelayHours returns the value that was added to the "delay_hours" field in this mutation.
func (m *CampaignStepMutation) AddedDelayHours() (r int, exists bool) {
	v := m.adddelay_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetDelayHours resets all changes to the "delay_hours" field.
func (m *CampaignStepMutation) ResetDelayHours() {
	m.delay_hours = nil
	m.adddelay_hours = nil
}

// SetDelayMinutes sets the "delay_minutes" field.
func (m *CampaignStepMutation) SetDelayMinutes(i int) {
	m.delay_minutes = &i
	m.adddelay_minutes = nil
}

// DelayMinutes returns the value of the "delay_minutes" field in the mutation.
func (m *CampaignStepMutation) DelayMinutes() (r int, exists bool) {
	v := m.delay_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDelayMinutes returns the old "delay_minutes" field's value of the CampaignStep entity.
// If the CampaignStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignStepMutation) OldDelayMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelayMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelayMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelayMinutes: %w", err)
	}
	return oldValue.DelayMinutes, nil
}

// AddDelayMinutes adds i to the "delay_minutes" field.
func (m *CampaignStepMutation) AddDelayMinutes(i int) {
	if m.adddelay_minutes != nil {
		*m.adddelay_minutes += i
	} else {
		m.adddelay_minutes = &i
	}
}

// AddedDelayMinutes returns the value that was added to the "delay_minutes" field in this mutation.
func (m *CampaignStepMutation) AddedDelayMinutes() (r int, exists bool) {
	v := m.adddelay_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDelayMinutes resets all changes to the "delay_minutes" field.
func (m *CampaignStepMutation) ResetDelayMinutes() {
	m.delay_minutes = nil
	m.adddelay_minutes = nil
}

// SetSendTimeStart sets the "send_time_start" field.
func (m *CampaignStepMutation) SetSendTimeStart(s string) {
	m.send_time_start = &s
}

// SendTimeStart returns the value of the "send_time_start" field in the mutation.
func (m *CampaignStepMutation) SendTimeStart() (r string, exists bool) {
	v := m.send_time_start
	if v == nil {
		return
	}
	return *v, true
}

// OldSendTimeStart returns the old "send_time_start" field's value of the CampaignStep entity.
// If the CampaignStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignStepMutation) OldSendTimeStart(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSendTimeStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSendTimeStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSendTimeStart: %w", err)
	}
	return oldValue.SendTimeStart, nil
}

// ClearSendTimeStart clears the value of the "send_time_start" field.
func (m *CampaignStepMutation) ClearSendTimeStart() {
	m.send_time_start = nil
	m.clearedFields[campaignstep.FieldSendTimeStart] = struct{}{}
}

// SendTimeStartCleared returns if the "send_time_start" field was cleared in this mutation.
func (m *CampaignStepMutation) SendTimeStartCleared() bool {
	_, ok := m.clearedFields[campaignstep.FieldSendTimeStart]
	return ok
}

// ResetSendTimeStart resets all changes to the "send_time_start" field.
func (m *CampaignStepMutation) ResetSendTimeStart() {
	m.send_time_start = nil
	delete(m.clearedFields, campaignstep.FieldSendTimeStart)
}

// SetSendTimeEnd sets the "send_time_end" field.
func (m *CampaignStepMutation) SetSendTimeEnd(s string) {
	m.send_time_end = &s
}

// SendTimeEnd returns the value of the "send_time_end" field in the mutation.
func (m *CampaignStepMutation) SendTimeEnd() (r string, exists bool) {
	v := m.send_time_end
	if v == nil {
		return
	}
	return *v, true
}

// OldSendTimeEnd returns the old "send_time_end" field's value of the CampaignStep entity.
// If the CampaignStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignStepMutation) OldSendTimeEnd(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSendTimeEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSendTimeEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSendTimeEnd: %w", err)
	}
	return oldValue.SendTimeEnd, nil
}

// ClearSendTimeEnd clears the value of the "send_time_end" field.
func (m *CampaignStepMutation) ClearSendTimeEnd() {
	m.send_time_end = nil
	m.clearedFields[campaignstep.FieldSendTimeEnd] = struct{}{}
}

// SendTimeEndCleared returns if the "send_time_end" field was cleared in this mutation.
func (m *CampaignStepMutation) SendTimeEndCleared() bool {
	_, ok := m.clearedFields[campaignstep.FieldSendTimeEnd]
	return ok
}

// ResetSendTimeEnd resets all changes to the "send_time_end" field.
func (m *CampaignStepMutation) ResetSendTimeEnd() {
	m.send_time_end = nil
	delete(m.clearedFields, campaignstep.FieldSendTimeEnd)
}

// Where appends a list predicates to the CampaignStepMutation builder.
func (m *CampaignStepMutation) Where(ps ...predicate.CampaignStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CampaignStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CampaignStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CampaignStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CampaignStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CampaignStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CampaignStep).
func (m *CampaignStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CampaignStepMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.tenant_id != nil {
		fields = append(fields, campaignstep.FieldTenantID)
	}
	if m.campaign_id != nil {
		fields = append(fields, campaignstep.FieldCampaignID)
	}
	if m.step_order != nil {
		fields = append(fields, campaignstep.FieldStepOrder)
	}
	if m.channel_kind != nil {
		fields = append(fields, campaignstep.FieldChannelKind)
	}
	if m.channel_config_id != nil {
		fields = append(fields, campaignstep.FieldChannelConfigID)
	}
	if m.template_id != nil {
		fields = append(fields, campaignstep.FieldTemplateID)
	}
	if m.delay_days != nil {
		fields = append(fields, campaignstep.FieldDelayDays)
	}
	if m.delay_hours != nil {
		fields = append(fields, campaignstep.FieldDelayHours)
	}
	if m.delay_minutes != nil {
		fields = append(fields, campaignstep.FieldDelayMinutes)
	}
	if m.send_time_start != nil {
		fields = append(fields, campaignstep.FieldSendTimeStart)
	}
	if m.send_time_end != nil {
		fields = append(fields, campaignstep.FieldSendTimeEnd)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CampaignStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case campaignstep.FieldTenantID:
		return m.TenantID()
	case campaignstep.FieldCampaignID:
		return m.CampaignID()
	case campaignstep.FieldStepOrder:
		return m.StepOrder()
	case campaignstep.FieldChannelKind:
		return m.ChannelKind()
	case campaignstep.FieldChannelConfigID:
		return m.ChannelConfigID()
	case campaignstep.FieldTemplateID:
		return m.TemplateID()
	case campaignstep.FieldDelayDays:
		return m.DelayDays()
	case campaignstep.FieldDelayHours:
		return m.DelayHours()
	case campaignstep.FieldDelayMinutes:
		return m.DelayMinutes()
	case campaignstep.FieldSendTimeStart:
		return m.SendTimeStart()
	case campaignstep.FieldSendTimeEnd:
		return m.SendTimeEnd()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CampaignStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case campaignstep.FieldTenantID:
		return m.OldTenantID(ctx)
	case campaignstep.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case campaignstep.FieldStepOrder:
		return m.OldStepOrder(ctx)
	case campaignstep.FieldChannelKind:
		return m.OldChannelKind(ctx)
	case campaignstep.FieldChannelConfigID:
		return m.OldChannelConfigID(ctx)
	case campaignstep.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case campaignstep.FieldDelayDays:
		return m.OldDelayDays(ctx)
	case campaignstep.FieldDelayHours:
		return m.OldDelayHours(ctx)
	case campaignstep.FieldDelayMinutes:
		return m.OldDelayMinutes(ctx)
	case campaignstep.FieldSendTimeStart:
		return m.OldSendTimeStart(ctx)
	case campaignstep.FieldSendTimeEnd:
		return m.OldSendTimeEnd(ctx)
	}
	return nil, fmt.Errorf("unknown CampaignStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case campaignstep.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case campaignstep.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case campaignstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepOrder(v)
		return nil
	case campaignstep.FieldChannelKind:
		v, ok := value.(campaignstep.ChannelKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelKind(v)
		return nil
	case campaignstep.FieldChannelConfigID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelConfigID(v)
		return nil
	case campaignstep.FieldTemplateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case campaignstep.FieldDelayDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelayDays(v)
		return nil
	case campaignstep.FieldDelayHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelayHours(v)
		return nil
	case campaignstep.FieldDelayMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelayMinutes(v)
		return nil
	case campaignstep.FieldSendTimeStart:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSendTimeStart(v)
		return nil
	case campaignstep.FieldSendTimeEnd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSendTimeEnd(v)
		return nil
	}
	return fmt.Errorf("unknown CampaignStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CampaignStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_order != nil {
		fields = append(fields, campaignstep.FieldStepOrder)
	}
	if m.adddelay_days != nil {
		fields = append(fields, campaignstep.FieldDelayDays)
	}
	if m.adddelay_hours != nil {
		fields = append(fields, campaignstep.FieldDelayHours)
	}
	if m.adddelay_minutes != nil {
		fields = append(fields, campaignstep.FieldDelayMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CampaignStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case campaignstep.FieldStepOrder:
		return m.AddedStepOrder()
	case campaignstep.FieldDelayDays:
		return m.AddedDelayDays()
	case campaignstep.FieldDelayHours:
		return m.AddedDelayHours()
	case campaignstep.FieldDelayMinutes:
		return m.AddedDelayMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case campaignstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepOrder(v)
		return nil
	case campaignstep.FieldDelayDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDelayDays(v)
		return nil
	case campaignstep.FieldDelayHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDelayHours(v)
		return nil
	case campaignstep.FieldDelayMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDelayMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown CampaignStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CampaignStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(campaignstep.FieldSendTimeStart) {
		fields = append(fields, campaignstep.FieldSendTimeStart)
	}
	if m.FieldCleared(campaignstep.FieldSendTimeEnd) {
		fields = append(fields, campaignstep.FieldSendTimeEnd)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CampaignStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CampaignStepMutation) ClearField(name string) error {
	switch name {
	case campaignstep.FieldSendTimeStart:
		m.ClearSendTimeStart()
		return nil
	case campaignstep.FieldSendTimeEnd:
		m.ClearSendTimeEnd()
		return nil
	}
	return fmt.Errorf("unknown CampaignStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CampaignStepMutation) ResetField(name string) error {
	switch name {
	case campaignstep.FieldTenantID:
		m.ResetTenantID()
		return nil
	case campaignstep.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case campaignstep.FieldStepOrder:
		m.ResetStepOrder()
		return nil
	case campaignstep.FieldChannelKind:
		m.ResetChannelKind()
		return nil
	case campaignstep.FieldChannelConfigID:
		m.ResetChannelConfigID()
		return nil
	case campaignstep.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case campaignstep.FieldDelayDays:
		m.ResetDelayDays()
		return nil
	case campaignstep.FieldDelayHours:
		m.ResetDelayHours()
		return nil
	case campaignstep.FieldDelayMinutes:
		m.ResetDelayMinutes()
		return nil
	case campaignstep.FieldSendTimeStart:
		m.ResetSendTimeStart()
		return nil
	case campaignstep.FieldSendTimeEnd:
		m.ResetSendTimeEnd()
		return nil
	}
	return fmt.Errorf("unknown CampaignStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CampaignStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CampaignStepMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CampaignStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CampaignStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CampaignStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CampaignStepMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CampaignStepMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CampaignStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CampaignStepMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CampaignStep edge %s", name)
}

// ChannelConfigMutation represents an operation that mutates the ChannelConfig nodes in the graph.
type ChannelConfigMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	kind          *channelconfig.Kind
	name          *string
	active        *bool
	is_default    *bool
	credentials   *map[string]interface{}
	settings      *map[string]interface{}
	last_error    *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ChannelConfig, error)
	predicates    []predicate.ChannelConfig
}

var _ ent.Mutation = (*ChannelConfigMutation)(nil)

// channelconfigOption allows management of the mutation configuration using functional options.
type channelconfigOption func(*ChannelConfigMutation)

// newChannelConfigMutation creates new mutation for the ChannelConfig entity.
func newChannelConfigMutation(c config, op Op, opts ...channelconfigOption) *ChannelConfigMutation {
	m := &ChannelConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeChannelConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChannelConfigID sets the ID field of the mutation.
func withChannelConfigID(id string) channelconfigOption {
	return func(m *ChannelConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *ChannelConfig
		)
		m.oldValue = func(ctx context.Context) (*ChannelConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChannelConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChannelConfig sets the old ChannelConfig of the mutation.
func withChannelConfig(node *ChannelConfig) channelconfigOption {
	return func(m *ChannelConfigMutation) {
		m.oldValue = func(context.Context) (*ChannelConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChannelConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChannelConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChannelConfig entities.
func (m *ChannelConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChannelConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChannelConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChannelConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ChannelConfigMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ChannelConfigMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ChannelConfig entity.
// If the ChannelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelConfigMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ChannelConfigMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetKind sets the "kind" field.
func (m *ChannelConfigMutation) SetKind(c channelconfig.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ChannelConfigMutation) Kind() (r channelconfig.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ChannelConfig entity.
// If the ChannelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelConfigMutation) OldKind(ctx context.Context) (v channelconfig.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ChannelConfigMutation) ResetKind() {
	m.kind = nil
}

// SetName sets the "name" field.
func (m *ChannelConfigMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ChannelConfigMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ChannelConfig entity.
// If the ChannelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelConfigMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ChannelConfigMutation) ResetName() {
	m.name = nil
}

// SetActive sets the "active" field.
func (m *ChannelConfigMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ChannelConfigMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the ChannelConfig entity.
// If the ChannelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelConfigMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ChannelConfigMutation) ResetActive() {
	m.active = nil
}

// SetIsDefault sets the "is_default" field.
func (m *ChannelConfigMutation) SetIsDefault(b bool) {
	m.is_default = &b
}

// IsDefault returns the value of the "is_default" field in the mutation.
func (m *ChannelConfigMutation) IsDefault() (r bool, exists bool) {
	v := m.is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDefault returns the old "is_default" field's value of the ChannelConfig entity.
// If the ChannelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelConfigMutation) OldIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDefault: %w", err)
	}
	return oldValue.IsDefault, nil
}

// ResetIsDefault resets all changes to the "is_default" field.
func (m *ChannelConfigMutation) ResetIsDefault() {
	m.is_default = nil
}

// SetCredentials sets the "credentials" field.
func (m *ChannelConfigMutation) SetCredentials(value map[string]interface{}) {
	m.credentials = &value
}

// Credentials returns the value of the "credentials" field in the mutation.
func (m *ChannelConfigMutation) Credentials() (r map[string]interface{}, exists bool) {
	v := m.credentials
	if v == nil {
		return
	}
	return *v, true
}

// OldCredentials returns the old "credentials" field's value of the ChannelConfig entity.
// If the ChannelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelConfigMutation) OldCredentials(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCredentials is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCredentials requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCredentials: %w", err)
	}
	return oldValue.Credentials, nil
}

// ClearCredentials clears the value of the "credentials" field.
func (m *ChannelConfigMutation) ClearCredentials() {
	m.credentials = nil
	m.clearedFields[channelconfig.FieldCredentials] = struct{}{}
}

// CredentialsCleared returns if the "credentials" field was cleared in this mutation.
func (m *ChannelConfigMutation) CredentialsCleared() bool {
	_, ok := m.clearedFields[channelconfig.FieldCredentials]
	return ok
}

// ResetCredentials resets all changes to the "credentials" field.
func (m *ChannelConfigMutation) ResetCredentials() {
	m.credentials = nil
	delete(m.clearedFields, channelconfig.FieldCredentials)
}

// SetSettings sets the "settings" field.
func (m *ChannelConfigMutation) SetSettings(value map[string]interface{}) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *ChannelConfigMutation) Settings() (r map[string]interface{}, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the ChannelConfig entity.
// If the ChannelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelConfigMutation) OldSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ClearSettings clears the value of the "settings" field.
func (m *ChannelConfigMutation) ClearSettings() {
	m.settings = nil
	m.clearedFields[channelconfig.FieldSettings] = struct{}{}
}

// SettingsCleared returns if the "settings" field was cleared in this mutation.
func (m *ChannelConfigMutation) SettingsCleared() bool {
	_, ok := m.clearedFields[channelconfig.FieldSettings]
	return ok
}

// ResetSettings resets all changes to the "settings" field.
func (m *ChannelConfigMutation) ResetSettings() {
	m.settings = nil
	delete(m.clearedFields, channelconfig.FieldSettings)
}

// SetLastError sets the "last_error" field.
func (m *ChannelConfigMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *ChannelConfigMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the ChannelConfig entity.
// If the ChannelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelConfigMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *ChannelConfigMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[channelconfig.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *ChannelConfigMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[channelconfig.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *ChannelConfigMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, channelconfig.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChannelConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChannelConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChannelConfig entity.
// If the ChannelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChannelConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChannelConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChannelConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChannelConfig entity.
// If the ChannelConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChannelConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ChannelConfigMutation builder.
func (m *ChannelConfigMutation) Where(ps ...predicate.ChannelConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChannelConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChannelConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChannelConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChannelConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChannelConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChannelConfig).
func (m *ChannelConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChannelConfigMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tenant_id != nil {
		fields = append(fields, channelconfig.FieldTenantID)
	}
	if m.kind != nil {
		fields = append(fields, channelconfig.FieldKind)
	}
	if m.name != nil {
		fields = append(fields, channelconfig.FieldName)
	}
	if m.active != nil {
		fields = append(fields, channelconfig.FieldActive)
	}
	if m.is_default != nil {
		fields = append(fields, channelconfig.FieldIsDefault)
	}
	if m.credentials != nil {
		fields = append(fields, channelconfig.FieldCredentials)
	}
	if m.settings != nil {
		fields = append(fields, channelconfig.FieldSettings)
	}
	if m.last_error != nil {
		fields = append(fields, channelconfig.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, channelconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, channelconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChannelConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case channelconfig.FieldTenantID:
		return m.TenantID()
	case channelconfig.FieldKind:
		return m.Kind()
	case channelconfig.FieldName:
		return m.Name()
	case channelconfig.FieldActive:
		return m.Active()
	case channelconfig.FieldIsDefault:
		return m.IsDefault()
	case channelconfig.FieldCredentials:
		return m.Credentials()
	case channelconfig.FieldSettings:
		return m.Settings()
	case channelconfig.FieldLastError:
		return m.LastError()
	case channelconfig.FieldCreatedAt:
		return m.CreatedAt()
	case channelconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChannelConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case channelconfig.FieldTenantID:
		return m.OldTenantID(ctx)
	case channelconfig.FieldKind:
		return m.OldKind(ctx)
	case channelconfig.FieldName:
		return m.OldName(ctx)
	case channelconfig.FieldActive:
		return m.OldActive(ctx)
	case channelconfig.FieldIsDefault:
		return m.OldIsDefault(ctx)
	case channelconfig.FieldCredentials:
		return m.OldCredentials(ctx)
	case channelconfig.FieldSettings:
		return m.OldSettings(ctx)
	case channelconfig.FieldLastError:
		return m.OldLastError(ctx)
	case channelconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case channelconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChannelConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChannelConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case channelconfig.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case channelconfig.FieldKind:
		v, ok := value.(channelconfig.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case channelconfig.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case channelconfig.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case channelconfig.FieldIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDefault(v)
		return nil
	case channelconfig.FieldCredentials:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCredentials(v)
		return nil
	case channelconfig.FieldSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case channelconfig.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case channelconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case channelconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChannelConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChannelConfigMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChannelConfigMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChannelConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChannelConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChannelConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(channelconfig.FieldCredentials) {
		fields = append(fields, channelconfig.FieldCredentials)
	}
	if m.FieldCleared(channelconfig.FieldSettings) {
		fields = append(fields, channelconfig.FieldSettings)
	}
	if m.FieldCleared(channelconfig.FieldLastError) {
		fields = append(fields, channelconfig.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChannelConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChannelConfigMutation) ClearField(name string) error {
	switch name {
	case channelconfig.FieldCredentials:
		m.ClearCredentials()
		return nil
	case channelconfig.FieldSettings:
		m.ClearSettings()
		return nil
	case channelconfig.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown ChannelConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChannelConfigMutation) ResetField(name string) error {
	switch name {
	case channelconfig.FieldTenantID:
		m.ResetTenantID()
		return nil
	case channelconfig.FieldKind:
		m.ResetKind()
		return nil
	case channelconfig.FieldName:
		m.ResetName()
		return nil
	case channelconfig.FieldActive:
		m.ResetActive()
		return nil
	case channelconfig.FieldIsDefault:
		m.ResetIsDefault()
		return nil
	case channelconfig.FieldCredentials:
		m.ResetCredentials()
		return nil
	case channelconfig.FieldSettings:
		m.ResetSettings()
		return nil
	case channelconfig.FieldLastError:
		m.ResetLastError()
		return nil
	case channelconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case channelconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChannelConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChannelConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChannelConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChannelConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChannelConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChannelConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChannelConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChannelConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChannelConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChannelConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChannelConfig edge %s", name)
}

// ContactMutation represents an operation that mutates the Contact nodes in the graph.
type ContactMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	lead_id       *string
	name          *string
	email         *string
	phone         *string
	position      *string
	is_primary    *bool
	unsubscribed  *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Contact, error)
	predicates    []predicate.Contact
}

var _ ent.Mutation = (*ContactMutation)(nil)

// contactOption allows management of the mutation configuration using functional options.
type contactOption func(*ContactMutation)

// newContactMutation creates new mutation for the Contact entity.
func newContactMutation(c config, op Op, opts ...contactOption) *ContactMutation {
	m := &ContactMutation{
		config:        c,
		op:            op,
		typ:           TypeContact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContactID sets the ID field of the mutation.
func withContactID(id string) contactOption {
	return func(m *ContactMutation) {
		var (
			err   error
			once  sync.Once
			value *Contact
		)
		m.oldValue = func(ctx context.Context) (*Contact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContact sets the old Contact of the mutation.
func withContact(node *Contact) contactOption {
	return func(m *ContactMutation) {
		m.oldValue = func(context.Context) (*Contact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contact entities.
func (m *ContactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ContactMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ContactMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ContactMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetLeadID sets the "lead_id" field.
func (m *ContactMutation) SetLeadID(s string) {
	m.lead_id = &s
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *ContactMutation) LeadID() (r string, exists bool) {
	v := m.lead_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldLeadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *ContactMutation) ResetLeadID() {
	m.lead_id = nil
}

// SetName sets the "name" field.
func (m *ContactMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ContactMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ContactMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *ContactMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ContactMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ContactMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[contact.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ContactMutation) EmailCleared() bool {
	_, ok := m.clearedFields[contact.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ContactMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, contact.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *ContactMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ContactMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ContactMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[contact.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ContactMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[contact.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ContactMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, contact.FieldPhone)
}

// SetPosition sets the "position" field.
func (m *ContactMutation) SetPosition(s string) {
	m.position = &s
}

// Position returns the value of the "position" field in the mutation.
func (m *ContactMutation) Position() (r string, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldPosition(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// ClearPosition clears the value of the "position" field.
func (m *ContactMutation) ClearPosition() {
	m.position = nil
	m.clearedFields[contact.FieldPosition] = struct{}{}
}

// PositionCleared returns if the "position" field was cleared in this mutation.
func (m *ContactMutation) PositionCleared() bool {
	_, ok := m.clearedFields[contact.FieldPosition]
	return ok
}

// ResetPosition resets all changes to the "position" field.
func (m *ContactMutation) ResetPosition() {
	m.position = nil
	delete(m.clearedFields, contact.FieldPosition)
}

// SetIsPrimary sets the "is_primary" field.
func (m *ContactMutation) SetIsPrimary(b bool) {
	m.is_primary = &b
}

// IsPrimary returns the value of the "is_primary" field in the mutation.
func (m *ContactMutation) IsPrimary() (r bool, exists bool) {
	v := m.is_primary
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPrimary returns the old "is_primary" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldIsPrimary(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPrimary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPrimary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPrimary: %w", err)
	}
	return oldValue.IsPrimary, nil
}

// ResetIsPrimary resets all changes to the "is_primary" field.
func (m *ContactMutation) ResetIsPrimary() {
	m.is_primary = nil
}

// SetUnsubscribed sets the "unsubscribed" field.
func (m *ContactMutation) SetUnsubscribed(b bool) {
	m.unsubscribed = &b
}

// Unsubscribed returns the value of the "unsubscribed" field in the mutation.
func (m *ContactMutation) Unsubscribed() (r bool, exists bool) {
	v := m.unsubscribed
	if v == nil {
		return
	}
	return *v, true
}

// OldUnsubscribed returns the old "unsubscribed" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldUnsubscribed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnsubscribed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnsubscribed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnsubscribed: %w", err)
	}
	return oldValue.Unsubscribed, nil
}

// ResetUnsubscribed resets all changes to the "unsubscribed" field.
func (m *ContactMutation) ResetUnsubscribed() {
	m.unsubscribed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ContactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contact entity.
// If the Contact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ContactMutation builder.
func (m *ContactMutation) Where(ps ...predicate.Contact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contact).
func (m *ContactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContactMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant_id != nil {
		fields = append(fields, contact.FieldTenantID)
	}
	if m.lead_id != nil {
		fields = append(fields, contact.FieldLeadID)
	}
	if m.name != nil {
		fields = append(fields, contact.FieldName)
	}
	if m.email != nil {
		fields = append(fields, contact.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, contact.FieldPhone)
	}
	if m.position != nil {
		fields = append(fields, contact.FieldPosition)
	}
	if m.is_primary != nil {
		fields = append(fields, contact.FieldIsPrimary)
	}
	if m.unsubscribed != nil {
		fields = append(fields, contact.FieldUnsubscribed)
	}
	if m.created_at != nil {
		fields = append(fields, contact.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contact.FieldTenantID:
		return m.TenantID()
	case contact.FieldLeadID:
		return m.LeadID()
	case contact.FieldName:
		return m.Name()
	case contact.FieldEmail:
		return m.Email()
	case contact.FieldPhone:
		return m.Phone()
	case contact.FieldPosition:
		return m.Position()
	case contact.FieldIsPrimary:
		return m.IsPrimary()
	case contact.FieldUnsubscribed:
		return m.Unsubscribed()
	case contact.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contact.FieldTenantID:
		return m.OldTenantID(ctx)
	case contact.FieldLeadID:
		return m.OldLeadID(ctx)
	case contact.FieldName:
		return m.OldName(ctx)
	case contact.FieldEmail:
		return m.OldEmail(ctx)
	case contact.FieldPhone:
		return m.OldPhone(ctx)
	case contact.FieldPosition:
		return m.OldPosition(ctx)
	case contact.FieldIsPrimary:
		return m.OldIsPrimary(ctx)
	case contact.FieldUnsubscribed:
		return m.OldUnsubscribed(ctx)
	case contact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contact.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case contact.FieldLeadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case contact.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case contact.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case contact.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case contact.FieldPosition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case contact.FieldIsPrimary:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPrimary(v)
		return nil
	case contact.FieldUnsubscribed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnsubscribed(v)
		return nil
	case contact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContactMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContactMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Contact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contact.FieldEmail) {
		fields = append(fields, contact.FieldEmail)
	}
	if m.FieldCleared(contact.FieldPhone) {
		fields = append(fields, contact.FieldPhone)
	}
	if m.FieldCleared(contact.FieldPosition) {
		fields = append(fields, contact.FieldPosition)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContactMutation) ClearField(name string) error {
	switch name {
	case contact.FieldEmail:
		m.ClearEmail()
		return nil
	case contact.FieldPhone:
		m.ClearPhone()
		return nil
	case contact.FieldPosition:
		m.ClearPosition()
		return nil
	}
	return fmt.Errorf("unknown Contact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContactMutation) ResetField(name string) error {
	switch name {
	case contact.FieldTenantID:
		m.ResetTenantID()
		return nil
	case contact.FieldLeadID:
		m.ResetLeadID()
		return nil
	case contact.FieldName:
		m.ResetName()
		return nil
	case contact.FieldEmail:
		m.ResetEmail()
		return nil
	case contact.FieldPhone:
		m.ResetPhone()
		return nil
	case contact.FieldPosition:
		m.ResetPosition()
		return nil
	case contact.FieldIsPrimary:
		m.ResetIsPrimary()
		return nil
	case contact.FieldUnsubscribed:
		m.ResetUnsubscribed()
		return nil
	case contact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContactMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContactMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContactMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContactMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Contact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContactMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Contact edge %s", name)
}

// ContactAttemptMutation represents an operation that mutates the ContactAttempt nodes in the graph.
type ContactAttemptMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	campaign_id      *string
	campaign_step_id *string
	recipient_id     *string
	lead_id          *string
	contact_id       *string
	prospect_id      *string
	conversation_id  *string
	channel_kind     *contactattempt.ChannelKind
	direction        *contactattempt.Direction
	status           *contactattempt.Status
	subject          *string
	body             *string
	external_id      *string
	sent_at          *time.Time
	delivered_at     *time.Time
	opened_at        *time.Time
	clicked_at       *time.Time
	replied_at       *time.Time
	metadata         *map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ContactAttempt, error)
	predicates       []predicate.ContactAttempt
}

var _ ent.Mutation = (*ContactAttemptMutation)(nil)

// contactattemptOption allows management of the mutation configuration using functional options.
type contactattemptOption func(*ContactAttemptMutation)

// newContactAttemptMutation creates new mutation for the ContactAttempt entity.
func newContactAttemptMutation(c config, op Op, opts ...contactattemptOption) *ContactAttemptMutation {
	m := &ContactAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeContactAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContactAttemptID sets the ID field of the mutation.
func withContactAttemptID(id string) contactattemptOption {
	return func(m *ContactAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *ContactAttempt
		)
		m.oldValue = func(ctx context.Context) (*ContactAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContactAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContactAttempt sets the old ContactAttempt of the mutation.
func withContactAttempt(node *ContactAttempt) contactattemptOption {
	return func(m *ContactAttemptMutation) {
		m.oldValue = func(context.Context) (*ContactAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContactAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContactAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContactAttempt entities.
func (m *ContactAttemptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContactAttemptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContactAttemptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContactAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ContactAttemptMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ContactAttemptMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ContactAttemptMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetCampaignID sets the "campaign_id" field.
func (m *ContactAttemptMutation) SetCampaignID(s string) {
	m.campaign_id = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *ContactAttemptMutation) CampaignID() (r string, exists bool) {
	v := m.campaign_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldCampaignID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ClearCampaignID clears the value of the "campaign_id" field.
func (m *ContactAttemptMutation) ClearCampaignID() {
	m.campaign_id = nil
	m.clearedFields[contactattempt.FieldCampaignID] = struct{}{}
}

// CampaignIDCleared returns if the "campaign_id" field was cleared in this mutation.
func (m *ContactAttemptMutation) CampaignIDCleared() bool {
	_, ok := m.clearedFields[contactattempt.FieldCampaignID]
	return ok
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *ContactAttemptMutation) ResetCampaignID() {
	m.campaign_id = nil
	delete(m.clearedFields, contactattempt.FieldCampaignID)
}

// SetCampaignStepID sets the "campaign_step_id" field.
func (m *ContactAttemptMutation) SetCampaignStepID(s string) {
	m.campaign_step_id = &s
}

// CampaignStepID returns the value of the "campaign_step_id" field in the mutation.
func (m *ContactAttemptMutation) CampaignStepID() (r string, exists bool) {
	v := m.campaign_step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignStepID returns the old "campaign_step_id" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldCampaignStepID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignStepID: %w", err)
	}
	return oldValue.CampaignStepID, nil
}

// ClearCampaignStepID clears the value of the "campaign_step_id" field.
func (m *ContactAttemptMutation) ClearCampaignStepID() {
	m.campaign_step_id = nil
	m.clearedFields[contactattempt.FieldCampaignStepID] = struct{}{}
}

// CampaignStepIDCleared returns if the "campaign_step_id" field was cleared in this mutation.
func (m *ContactAttemptMutation) CampaignStepIDCleared() bool {
	_, ok := m.clearedFields[contactattempt.FieldCampaignStepID]
	return ok
}

// ResetCampaignStepID resets all changes to the "campaign_step_id" field.
func (m *ContactAttemptMutation) ResetCampaignStepID() {
	m.campaign_step_id = nil
	delete(m.clearedFields, contactattempt.FieldCampaignStepID)
}

// SetRecipientID sets the "recipient_id" field.
func (m *ContactAttemptMutation) SetRecipientID(s string) {
	m.recipient_id = &s
}

// RecipientID returns the value of the "recipient_id" field in the mutation.
func (m *ContactAttemptMutation) RecipientID() (r string, exists bool) {
	v := m.recipient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientID returns the old "recipient_id" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldRecipientID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientID: %w", err)
	}
	return oldValue.RecipientID, nil
}

// ClearRecipientID clears the value of the "recipient_id" field.
func (m *ContactAttemptMutation) ClearRecipientID() {
	m.recipient_id = nil
	m.clearedFields[contactattempt.FieldRecipientID] = struct{}{}
}

// RecipientIDCleared returns if the "recipient_id" field was cleared in this mutation.
func (m *ContactAttemptMutation) RecipientIDCleared() bool {
	_, ok := m.clearedFields[contactattempt.FieldRecipientID]
	return ok
}

// ResetRecipientID resets all changes to the "recipient_id" field.
func (m *ContactAttemptMutation) ResetRecipientID() {
	m.recipient_id = nil
	delete(m.clearedFields, contactattempt.FieldRecipientID)
}

// SetLeadID sets the "lead_id" field.
func (m *ContactAttemptMutation) SetLeadID(s string) {
	m.lead_id = &s
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *ContactAttemptMutation) LeadID() (r string, exists bool) {
	v := m.lead_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldLeadID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ClearLeadID clears the value of the "lead_id" field.
func (m *ContactAttemptMutation) ClearLeadID() {
	m.lead_id = nil
	m.clearedFields[contactattempt.FieldLeadID] = struct{}{}
}

// LeadIDCleared returns if the "lead_id" field was cleared in this mutation.
func (m *ContactAttemptMutation) LeadIDCleared() bool {
	_, ok := m.clearedFields[contactattempt.FieldLeadID]
	return ok
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *ContactAttemptMutation) ResetLeadID() {
	m.lead_id = nil
	delete(m.clearedFields, contactattempt.FieldLeadID)
}

// SetContactID sets the "contact_id" field.
func (m *ContactAttemptMutation) SetContactID(s string) {
	m.contact_id = &s
}

// ContactID returns the value of the "contact_id" field in the mutation.
func (m *ContactAttemptMutation) ContactID() (r string, exists bool) {
	v := m.contact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContactID returns the old "contact_id" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldContactID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactID: %w", err)
	}
	return oldValue.ContactID, nil
}

// ClearContactID clears the value of the "contact_id" field.
func (m *ContactAttemptMutation) ClearContactID() {
	m.contact_id = nil
	m.clearedFields[contactattempt.FieldContactID] = struct{}{}
}

// ContactIDCleared returns if the "contact_id" field was cleared in this mutation.
func (m *ContactAttemptMutation) ContactIDCleared() bool {
	_, ok := m.clearedFields[contactattempt.FieldContactID]
	return ok
}

// ResetContactID resets all changes to the "contact_id" field.
func (m *ContactAttemptMutation) ResetContactID() {
	m.contact_id = nil
	delete(m.clearedFields, contactattempt.FieldContactID)
}

// SetProspectID sets the "prospect_id" field.
func (m *ContactAttemptMutation) SetProspectID(s string) {
	m.prospect_id = &s
}

// ProspectID returns the value of the "prospect_id" field in the mutation.
func (m *ContactAttemptMutation) ProspectID() (r string, exists bool) {
	v := m.prospect_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProspectID returns the old "prospect_id" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldProspectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProspectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProspectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProspectID: %w", err)
	}
	return oldValue.ProspectID, nil
}

// ClearProspectID clears the value of the "prospect_id" field.
func (m *ContactAttemptMutation) ClearProspectID() {
	m.prospect_id = nil
	m.clearedFields[contactattempt.FieldProspectID] = struct{}{}
}

// ProspectIDCleared returns if the "prospect_id" field was cleared in this mutation.
func (m *ContactAttemptMutation) ProspectIDCleared() bool {
	_, ok := m.clearedFields[contactattempt.FieldProspectID]
	return ok
}

// ResetProspectID resets all changes to the "prospect_id" field.
func (m *ContactAttemptMutation) ResetProspectID() {
	m.prospect_id = nil
	delete(m.clearedFields, contactattempt.FieldProspectID)
}

// SetConversationID sets the "conversation_id" field.
func (m *ContactAttemptMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *ContactAttemptMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldConversationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ClearConversationID clears the value of the "conversation_id" field.
func (m *ContactAttemptMutation) ClearConversationID() {
	m.conversation_id = nil
	m.clearedFields[contactattempt.FieldConversationID] = struct{}{}
}

// ConversationIDCleared returns if the "conversation_id" field was cleared in this mutation.
func (m *ContactAttemptMutation) ConversationIDCleared() bool {
	_, ok := m.clearedFields[contactattempt.FieldConversationID]
	return ok
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *ContactAttemptMutation) ResetConversationID() {
	m.conversation_id = nil
	delete(m.clearedFields, contactattempt.FieldConversationID)
}

// SetChannelKind sets the "channel_kind" field.
func (m *ContactAttemptMutation) SetChannelKind(ck contactattempt.ChannelKind) {
	m.channel_kind = &ck
}

// ChannelKind returns the value of the "channel_kind" field in the mutation.
func (m *ContactAttemptMutation) ChannelKind() (r contactattempt.ChannelKind, exists bool) {
	v := m.channel_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelKind returns the old "channel_kind" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldChannelKind(ctx context.Context) (v contactattempt.ChannelKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelKind: %w", err)
	}
	return oldValue.ChannelKind, nil
}

// ResetChannelKind resets all changes to the "channel_kind" field.
func (m *ContactAttemptMutation) ResetChannelKind() {
	m.channel_kind = nil
}

// SetDirection sets the "direction" field.
func (m *ContactAttemptMutation) SetDirection(c contactattempt.Direction) {
	m.direction = &c
}

// Direction returns the value of the "direction" field in the mutation.
func (m *ContactAttemptMutation) Direction() (r contactattempt.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldDirection(ctx context.Context) (v contactattempt.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *ContactAttemptMutation) ResetDirection() {
	m.direction = nil
}

// SetStatus sets the "status" field.
func (m *ContactAttemptMutation) SetStatus(c contactattempt.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ContactAttemptMutation) Status() (r contactattempt.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldStatus(ctx context.Context) (v contactattempt.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ContactAttemptMutation) ResetStatus() {
	m.status = nil
}

// SetSubject sets the "subject" field.
func (m *ContactAttemptMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *ContactAttemptMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldSubject(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *ContactAttemptMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[contactattempt.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *ContactAttemptMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[contactattempt.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *ContactAttemptMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, contactattempt.FieldSubject)
}

// SetBody sets the "body" field.
func (m *ContactAttemptMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *ContactAttemptMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *ContactAttemptMutation) ResetBody() {
	m.body = nil
}

// SetExternalID sets the "external_id" field.
func (m *ContactAttemptMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *ContactAttemptMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldExternalID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ClearExternalID clears the value of the "external_id" field.
func (m *ContactAttemptMutation) ClearExternalID() {
	m.external_id = nil
	m.clearedFields[contactattempt.FieldExternalID] = struct{}{}
}

// ExternalIDCleared returns if the "external_id" field was cleared in this mutation.
func (m *ContactAttemptMutation) ExternalIDCleared() bool {
	_, ok := m.clearedFields[contactattempt.FieldExternalID]
	return ok
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *ContactAttemptMutation) ResetExternalID() {
	m.external_id = nil
	delete(m.clearedFields, contactattempt.FieldExternalID)
}

// SetSentAt sets the "sent_at" field.
func (m *ContactAttemptMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *ContactAttemptMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *ContactAttemptMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[contactattempt.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *ContactAttemptMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[contactattempt.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *ContactAttemptMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, contactattempt.FieldSentAt)
}

// SetDeliveredAt sets the "delivered_at" field.
func (m *ContactAttemptMutation) SetDeliveredAt(t time.Time) {
	m.delivered_at = &t
}

// DeliveredAt returns the value of the "delivered_at" field in the mutation.
func (m *ContactAttemptMutation) DeliveredAt() (r time.Time, exists bool) {
	v := m.delivered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredAt returns the old "delivered_at" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldDeliveredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredAt: %w", err)
	}
	return oldValue.DeliveredAt, nil
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (m *ContactAttemptMutation) ClearDeliveredAt() {
	m.delivered_at = nil
	m.clearedFields[contactattempt.FieldDeliveredAt] = struct{}{}
}

// DeliveredAtCleared returns if the "delivered_at" field was cleared in this mutation.
func (m *ContactAttemptMutation) DeliveredAtCleared() bool {
	_, ok := m.clearedFields[contactattempt.FieldDeliveredAt]
	return ok
}

// ResetDeliveredAt resets all changes to the "delivered_at" field.
func (m *ContactAttemptMutation) ResetDeliveredAt() {
	m.delivered_at = nil
	delete(m.clearedFields, contactattempt.FieldDeliveredAt)
}

// SetOpenedAt sets the "opened_at" field.
func (m *ContactAttemptMutation) SetOpenedAt(t time.Time) {
	m.opened_at = &t
}

// OpenedAt returns the value of the "opened_at" field in the mutation.
func (m *ContactAttemptMutation) OpenedAt() (r time.Time, exists bool) {
	v := m.opened_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenedAt returns the old "opened_at" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldOpenedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenedAt: %w", err)
	}
	return oldValue.OpenedAt, nil
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (m *ContactAttemptMutation) ClearOpenedAt() {
	m.opened_at = nil
	m.clearedFields[contactattempt.FieldOpenedAt] = struct{}{}
}

// OpenedAtCleared returns if the "opened_at" field was cleared in this mutation.
func (m *ContactAttemptMutation) OpenedAtCleared() bool {
	_, ok := m.clearedFields[contactattempt.FieldOpenedAt]
	return ok
}

// ResetOpenedAt resets all changes to the "opened_at" field.
func (m *ContactAttemptMutation) ResetOpenedAt() {
	m.opened_at = nil
	delete(m.clearedFields, contactattempt.FieldOpenedAt)
}

// SetClickedAt sets the "clicked_at" field.
func (m *ContactAttemptMutation) SetClickedAt(t time.Time) {
	m.clicked_at = &t
}

// ClickedAt returns the value of the "clicked_at" field in the mutation.
func (m *ContactAttemptMutation) ClickedAt() (r time.Time, exists bool) {
	v := m.clicked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClickedAt returns the old "clicked_at" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldClickedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClickedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClickedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClickedAt: %w", err)
	}
	return oldValue.ClickedAt, nil
}

// ClearClickedAt clears the value of the "clicked_at" field.
func (m *ContactAttemptMutation) ClearClickedAt() {
	m.clicked_at = nil
	m.clearedFields[contactattempt.FieldClickedAt] = struct{}{}
}

// ClickedAtCleared returns if the "clicked_at" field was cleared in this mutation.
func (m *ContactAttemptMutation) ClickedAtCleared() bool {
	_, ok := m.clearedFields[contactattempt.FieldClickedAt]
	return ok
}

// ResetClickedAt resets all changes to the "clicked_at" field.
func (m *ContactAttemptMutation) ResetClickedAt() {
	m.clicked_at = nil
	delete(m.clearedFields, contactattempt.FieldClickedAt)
}

// SetRepliedAt sets the "replied_at" field.
func (m *ContactAttemptMutation) SetRepliedAt(t time.Time) {
	m.replied_at = &t
}

// RepliedAt returns the value of the "replied_at" field in the mutation.
func (m *ContactAttemptMutation) RepliedAt() (r time.Time, exists bool) {
	v := m.replied_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRepliedAt returns the old "replied_at" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldRepliedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepliedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepliedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepliedAt: %w", err)
	}
	return oldValue.RepliedAt, nil
}

// ClearRepliedAt clears the value of the "replied_at" field.
func (m *ContactAttemptMutation) ClearRepliedAt() {
	m.replied_at = nil
	m.clearedFields[contactattempt.FieldRepliedAt] = struct{}{}
}

// RepliedAtCleared returns if the "replied_at" field was cleared in this mutation.
func (m *ContactAttemptMutation) RepliedAtCleared() bool {
	_, ok := m.clearedFields[contactattempt.FieldRepliedAt]
	return ok
}

// ResetRepliedAt resets all changes to the "replied_at" field.
func (m *ContactAttemptMutation) ResetRepliedAt() {
	m.replied_at = nil
	delete(m.clearedFields, contactattempt.FieldRepliedAt)
}

// SetMetadata sets the "metadata" field.
func (m *ContactAttemptMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ContactAttemptMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ContactAttemptMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[contactattempt.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ContactAttemptMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[contactattempt.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ContactAttemptMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, contactattempt.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContactAttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContactAttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContactAttempt entity.
// If the ContactAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContactAttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContactAttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ContactAttemptMutation builder.
func (m *ContactAttemptMutation) Where(ps ...predicate.ContactAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContactAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContactAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContactAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContactAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContactAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContactAttempt).
func (m *ContactAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContactAttemptMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.tenant_id != nil {
		fields = append(fields, contactattempt.FieldTenantID)
	}
	if m.campaign_id != nil {
		fields = append(fields, contactattempt.FieldCampaignID)
	}
	if m.campaign_step_id != nil {
		fields = append(fields, contactattempt.FieldCampaignStepID)
	}
	if m.recipient_id != nil {
		fields = append(fields, contactattempt.FieldRecipientID)
	}
	if m.lead_id != nil {
		fields = append(fields, contactattempt.FieldLeadID)
	}
	if m.contact_id != nil {
		fields = append(fields, contactattempt.FieldContactID)
	}
	if m.prospect_id != nil {
		fields = append(fields, contactattempt.FieldProspectID)
	}
	if m.conversation_id != nil {
		fields = append(fields, contactattempt.FieldConversationID)
	}
	if m.channel_kind != nil {
		fields = append(fields, contactattempt.FieldChannelKind)
	}
	if m.direction != nil {
		fields = append(fields, contactattempt.FieldDirection)
	}
	if m.status != nil {
		fields = append(fields, contactattempt.FieldStatus)
	}
	if m.subject != nil {
		fields = append(fields, contactattempt.FieldSubject)
	}
	if m.body != nil {
		fields = append(fields, contactattempt.FieldBody)
	}
	if m.external_id != nil {
		fields = append(fields, contactattempt.FieldExternalID)
	}
	if m.sent_at != nil {
		fields = append(fields, contactattempt.FieldSentAt)
	}
	if m.delivered_at != nil {
		fields = append(fields, contactattempt.FieldDeliveredAt)
	}
	if m.opened_at != nil {
		fields = append(fields, contactattempt.FieldOpenedAt)
	}
	if m.clicked_at != nil {
		fields = append(fields, contactattempt.FieldClickedAt)
	}
	if m.replied_at != nil {
		fields = append(fields, contactattempt.FieldRepliedAt)
	}
	if m.metadata != nil {
		fields = append(fields, contactattempt.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, contactattempt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContactAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contactattempt.FieldTenantID:
		return m.TenantID()
	case contactattempt.FieldCampaignID:
		return m.CampaignID()
	case contactattempt.FieldCampaignStepID:
		return m.CampaignStepID()
	case contactattempt.FieldRecipientID:
		return m.RecipientID()
	case contactattempt.FieldLeadID:
		return m.LeadID()
	case contactattempt.FieldContactID:
		return m.ContactID()
	case contactattempt.FieldProspectID:
		return m.ProspectID()
	case contactattempt.FieldConversationID:
		return m.ConversationID()
	case contactattempt.FieldChannelKind:
		return m.ChannelKind()
	case contactattempt.FieldDirection:
		return m.Direction()
	case contactattempt.FieldStatus:
		return m.Status()
	case contactattempt.FieldSubject:
		return m.Subject()
	case contactattempt.FieldBody:
		return m.Body()
	case contactattempt.FieldExternalID:
		return m.ExternalID()
	case contactattempt.FieldSentAt:
		return m.SentAt()
	case contactattempt.FieldDeliveredAt:
		return m.DeliveredAt()
	case contactattempt.FieldOpenedAt:
		return m.OpenedAt()
	case contactattempt.FieldClickedAt:
		return m.ClickedAt()
	case contactattempt.FieldRepliedAt:
		return m.RepliedAt()
	case contactattempt.FieldMetadata:
		return m.Metadata()
	case contactattempt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContactAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contactattempt.FieldTenantID:
		return m.OldTenantID(ctx)
	case contactattempt.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case contactattempt.FieldCampaignStepID:
		return m.OldCampaignStepID(ctx)
	case contactattempt.FieldRecipientID:
		return m.OldRecipientID(ctx)
	case contactattempt.FieldLeadID:
		return m.OldLeadID(ctx)
	case contactattempt.FieldContactID:
		return m.OldContactID(ctx)
	case contactattempt.FieldProspectID:
		return m.OldProspectID(ctx)
	case contactattempt.FieldConversationID:
		return m.OldConversationID(ctx)
	case contactattempt.FieldChannelKind:
		return m.OldChannelKind(ctx)
	case contactattempt.FieldDirection:
		return m.OldDirection(ctx)
	case contactattempt.FieldStatus:
		return m.OldStatus(ctx)
	case contactattempt.FieldSubject:
		return m.OldSubject(ctx)
	case contactattempt.FieldBody:
		return m.OldBody(ctx)
	case contactattempt.FieldExternalID:
		return m.OldExternalID(ctx)
	case contactattempt.FieldSentAt:
		return m.OldSentAt(ctx)
	case contactattempt.FieldDeliveredAt:
		return m.OldDeliveredAt(ctx)
	case contactattempt.FieldOpenedAt:
		return m.OldOpenedAt(ctx)
	case contactattempt.FieldClickedAt:
		return m.OldClickedAt(ctx)
	case contactattempt.FieldRepliedAt:
		return m.OldRepliedAt(ctx)
	case contactattempt.FieldMetadata:
		return m.OldMetadata(ctx)
	case contactattempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContactAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contactattempt.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case contactattempt.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case contactattempt.FieldCampaignStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignStepID(v)
		return nil
	case contactattempt.FieldRecipientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientID(v)
		return nil
	case contactattempt.FieldLeadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case contactattempt.FieldContactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactID(v)
		return nil
	case contactattempt.FieldProspectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProspectID(v)
		return nil
	case contactattempt.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case contactattempt.FieldChannelKind:
		v, ok := value.(contactattempt.ChannelKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelKind(v)
		return nil
	case contactattempt.FieldDirection:
		v, ok := value.(contactattempt.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case contactattempt.FieldStatus:
		v, ok := value.(contactattempt.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case contactattempt.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case contactattempt.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case contactattempt.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case contactattempt.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case contactattempt.FieldDeliveredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredAt(v)
		return nil
	case contactattempt.FieldOpenedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenedAt(v)
		return nil
	case contactattempt.FieldClickedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClickedAt(v)
		return nil
	case contactattempt.FieldRepliedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepliedAt(v)
		return nil
	case contactattempt.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case contactattempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContactAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContactAttemptMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContactAttemptMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContactAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ContactAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContactAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contactattempt.FieldCampaignID) {
		fields = append(fields, contactattempt.FieldCampaignID)
	}
	if m.FieldCleared(contactattempt.FieldCampaignStepID) {
		fields = append(fields, contactattempt.FieldCampaignStepID)
	}
	if m.FieldCleared(contactattempt.FieldRecipientID) {
		fields = append(fields, contactattempt.FieldRecipientID)
	}
	if m.FieldCleared(contactattempt.FieldLeadID) {
		fields = append(fields, contactattempt.FieldLeadID)
	}
	if m.FieldCleared(contactattempt.FieldContactID) {
		fields = append(fields, contactattempt.FieldContactID)
	}
	if m.FieldCleared(contactattempt.FieldProspectID) {
		fields = append(fields, contactattempt.FieldProspectID)
	}
	if m.FieldCleared(contactattempt.FieldConversationID) {
		fields = append(fields, contactattempt.FieldConversationID)
	}
	if m.FieldCleared(contactattempt.FieldSubject) {
		fields = append(fields, contactattempt.FieldSubject)
	}
	if m.FieldCleared(contactattempt.FieldExternalID) {
		fields = append(fields, contactattempt.FieldExternalID)
	}
	if m.FieldCleared(contactattempt.FieldSentAt) {
		fields = append(fields, contactattempt.FieldSentAt)
	}
	if m.FieldCleared(contactattempt.FieldDeliveredAt) {
		fields = append(fields, contactattempt.FieldDeliveredAt)
	}
	if m.FieldCleared(contactattempt.FieldOpenedAt) {
		fields = append(fields, contactattempt.FieldOpenedAt)
	}
	if m.FieldCleared(contactattempt.FieldClickedAt) {
		fields = append(fields, contactattempt.FieldClickedAt)
	}
	if m.FieldCleared(contactattempt.FieldRepliedAt) {
		fields = append(fields, contactattempt.FieldRepliedAt)
	}
	if m.FieldCleared(contactattempt.FieldMetadata) {
		fields = append(fields, contactattempt.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContactAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContactAttemptMutation) ClearField(name string) error {
	switch name {
	case contactattempt.FieldCampaignID:
		m.ClearCampaignID()
		return nil
	case contactattempt.FieldCampaignStepID:
		m.ClearCampaignStepID()
		return nil
	case contactattempt.FieldRecipientID:
		m.ClearRecipientID()
		return nil
	case contactattempt.FieldLeadID:
		m.ClearLeadID()
		return nil
	case contactattempt.FieldContactID:
		m.ClearContactID()
		return nil
	case contactattempt.FieldProspectID:
		m.ClearProspectID()
		return nil
	case contactattempt.FieldConversationID:
		m.ClearConversationID()
		return nil
	case contactattempt.FieldSubject:
		m.ClearSubject()
		return nil
	case contactattempt.FieldExternalID:
		m.ClearExternalID()
		return nil
	case contactattempt.FieldSentAt:
		m.ClearSentAt()
		return nil
	case contactattempt.FieldDeliveredAt:
		m.ClearDeliveredAt()
		return nil
	case contactattempt.FieldOpenedAt:
		m.ClearOpenedAt()
		return nil
	case contactattempt.FieldClickedAt:
		m.ClearClickedAt()
		return nil
	case contactattempt.FieldRepliedAt:
		m.ClearRepliedAt()
		return nil
	case contactattempt.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ContactAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContactAttemptMutation) ResetField(name string) error {
	switch name {
	case contactattempt.FieldTenantID:
		m.ResetTenantID()
		return nil
	case contactattempt.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case contactattempt.FieldCampaignStepID:
		m.ResetCampaignStepID()
		return nil
	case contactattempt.FieldRecipientID:
		m.ResetRecipientID()
		return nil
	case contactattempt.FieldLeadID:
		m.ResetLeadID()
		return nil
	case contactattempt.FieldContactID:
		m.ResetContactID()
		return nil
	case contactattempt.FieldProspectID:
		m.ResetProspectID()
		return nil
	case contactattempt.FieldConversationID:
		m.ResetConversationID()
		return nil
	case contactattempt.FieldChannelKind:
		m.ResetChannelKind()
		return nil
	case contactattempt.FieldDirection:
		m.ResetDirection()
		return nil
	case contactattempt.FieldStatus:
		m.ResetStatus()
		return nil
	case contactattempt.FieldSubject:
		m.ResetSubject()
		return nil
	case contactattempt.FieldBody:
		m.ResetBody()
		return nil
	case contactattempt.FieldExternalID:
		m.ResetExternalID()
		return nil
	case contactattempt.FieldSentAt:
		m.ResetSentAt()
		return nil
	case contactattempt.FieldDeliveredAt:
		m.ResetDeliveredAt()
		return nil
	case contactattempt.FieldOpenedAt:
		m.ResetOpenedAt()
		return nil
	case contactattempt.FieldClickedAt:
		m.ResetClickedAt()
		return nil
	case contactattempt.FieldRepliedAt:
		m.ResetRepliedAt()
		return nil
	case contactattempt.FieldMetadata:
		m.ResetMetadata()
		return nil
	case contactattempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContactAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContactAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContactAttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContactAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContactAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContactAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContactAttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContactAttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ContactAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContactAttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ContactAttempt edge %s", name)
}

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op                Op
	typ               string
	id                *string
	tenant_id         *string
	channel_kind      *conversation.ChannelKind
	channel_config_id *string
	contact_id        *string
	prospect_id       *string
	lead_id           *string
	status            *conversation.Status
	last_watermark    *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Conversation, error)
	predicates        []predicate.Conversation
}

var _ ent.Mutation = (*ConversationMutation)(nil)

// conversationOption allows management of the mutation configuration using functional options.
type conversationOption func(*ConversationMutation)

// newConversationMutation creates new mutation for the Conversation entity.
func newConversationMutation(c config, op Op, opts ...conversationOption) *ConversationMutation {
	m := &ConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationID sets the ID field of the mutation.
func withConversationID(id string) conversationOption {
	return func(m *ConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversation
		)
		m.oldValue = func(ctx context.Context) (*Conversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversation sets the old Conversation of the mutation.
func withConversation(node *Conversation) conversationOption {
	return func(m *ConversationMutation) {
		m.oldValue = func(context.Context) (*Conversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Conversation entities.
func (m *ConversationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ConversationMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ConversationMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ConversationMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetChannelKind sets the "channel_kind" field.
func (m *ConversationMutation) SetChannelKind(ck conversation.ChannelKind) {
	m.channel_kind = &ck
}

// ChannelKind returns the value of the "channel_kind" field in the mutation.
func (m *ConversationMutation) ChannelKind() (r conversation.ChannelKind, exists bool) {
	v := m.channel_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelKind returns the old "channel_kind" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldChannelKind(ctx context.Context) (v conversation.ChannelKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelKind: %w", err)
	}
	return oldValue.ChannelKind, nil
}

// ResetChannelKind resets all changes to the "channel_kind" field.
func (m *ConversationMutation) ResetChannelKind() {
	m.channel_kind = nil
}

// SetChannelConfigID sets the "channel_config_id" field.
func (m *ConversationMutation) SetChannelConfigID(s string) {
	m.channel_config_id = &s
}

// ChannelConfigID returns the value of the "channel_config_id" field in the mutation.
func (m *ConversationMutation) ChannelConfigID() (r string, exists bool) {
	v := m.channel_config_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelConfigID returns the old "channel_config_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldChannelConfigID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelConfigID: %w", err)
	}
	return oldValue.ChannelConfigID, nil
}

// ResetChannelConfigID resets all changes to the "channel_config_id" field.
func (m *ConversationMutation) ResetChannelConfigID() {
	m.channel_config_id = nil
}

// SetContactID sets the "contact_id" field.
func (m *ConversationMutation) SetContactID(s string) {
	m.contact_id = &s
}

// ContactID returns the value of the "contact_id" field in the mutation.
func (m *ConversationMutation) ContactID() (r string, exists bool) {
	v := m.contact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContactID returns the old "contact_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldContactID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactID: %w", err)
	}
	return oldValue.ContactID, nil
}

// ClearContactID clears the value of the "contact_id" field.
func (m *ConversationMutation) ClearContactID() {
	m.contact_id = nil
	m.clearedFields[conversation.FieldContactID] = struct{}{}
}

// ContactIDCleared returns if the "contact_id" field was cleared in this mutation.
func (m *ConversationMutation) ContactIDCleared() bool {
	_, ok := m.clearedFields[conversation.FieldContactID]
	return ok
}

// ResetContactID resets all changes to the "contact_id" field.
func (m *ConversationMutation) ResetContactID() {
	m.contact_id = nil
	delete(m.clearedFields, conversation.FieldContactID)
}

// SetProspectID sets the "prospect_id" field.
func (m *ConversationMutation) SetProspectID(s string) {
	m.prospect_id = &s
}

// ProspectID returns the value of the "prospect_id" field in the mutation.
func (m *ConversationMutation) ProspectID() (r string, exists bool) {
	v := m.prospect_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProspectID returns the old "prospect_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldProspectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProspectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProspectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProspectID: %w", err)
	}
	return oldValue.ProspectID, nil
}

// ClearProspectID clears the value of the "prospect_id" field.
func (m *ConversationMutation) ClearProspectID() {
	m.prospect_id = nil
	m.clearedFields[conversation.FieldProspectID] = struct{}{}
}

// ProspectIDCleared returns if the "prospect_id" field was cleared in this mutation.
func (m *ConversationMutation) ProspectIDCleared() bool {
	_, ok := m.clearedFields[conversation.FieldProspectID]
	return ok
}

// ResetProspectID resets all changes to the "prospect_id" field.
func (m *ConversationMutation) ResetProspectID() {
	m.prospect_id = nil
	delete(m.clearedFields, conversation.FieldProspectID)
}

// SetLeadID sets the "lead_id" field.
func (m *ConversationMutation) SetLeadID(s string) {
	m.lead_id = &s
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *ConversationMutation) LeadID() (r string, exists bool) {
	v := m.lead_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldLeadID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ClearLeadID clears the value of the "lead_id" field.
func (m *ConversationMutation) ClearLeadID() {
	m.lead_id = nil
	m.clearedFields[conversation.FieldLeadID] = struct{}{}
}

// LeadIDCleared returns if the "lead_id" field was cleared in this mutation.
func (m *ConversationMutation) LeadIDCleared() bool {
	_, ok := m.clearedFields[conversation.FieldLeadID]
	return ok
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *ConversationMutation) ResetLeadID() {
	m.lead_id = nil
	delete(m.clearedFields, conversation.FieldLeadID)
}

// SetStatus sets the "status" field.
func (m *ConversationMutation) SetStatus(c conversation.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConversationMutation) Status() (r conversation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldStatus(ctx context.Context) (v conversation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConversationMutation) ResetStatus() {
	m.status = nil
}

// SetLastWatermark sets the "last_watermark" field.
func (m *ConversationMutation) SetLastWatermark(s string) {
	m.last_watermark = &s
}

// LastWatermark returns the value of the "last_watermark" field in the mutation.
func (m *ConversationMutation) LastWatermark() (r string, exists bool) {
	v := m.last_watermark
	if v == nil {
		return
	}
	return *v, true
}

// OldLastWatermark returns the old "last_watermark" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldLastWatermark(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastWatermark is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastWatermark requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastWatermark: %w", err)
	}
	return oldValue.LastWatermark, nil
}

// ClearLastWatermark clears the value of the "last_watermark" field.
func (m *ConversationMutation) ClearLastWatermark() {
	m.last_watermark = nil
	m.clearedFields[conversation.FieldLastWatermark] = struct{}{}
}

// LastWatermarkCleared returns if the "last_watermark" field was cleared in this mutation.
func (m *ConversationMutation) LastWatermarkCleared() bool {
	_, ok := m.clearedFields[conversation.FieldLastWatermark]
	return ok
}

// ResetLastWatermark resets all changes to the "last_watermark" field.
func (m *ConversationMutation) ResetLastWatermark() {
	m.last_watermark = nil
	delete(m.clearedFields, conversation.FieldLastWatermark)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConversationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ConversationMutation builder.
func (m *ConversationMutation) Where(ps ...predicate.Conversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversation).
func (m *ConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tenant_id != nil {
		fields = append(fields, conversation.FieldTenantID)
	}
	if m.channel_kind != nil {
		fields = append(fields, conversation.FieldChannelKind)
	}
	if m.channel_config_id != nil {
		fields = append(fields, conversation.FieldChannelConfigID)
	}
	if m.contact_id != nil {
		fields = append(fields, conversation.FieldContactID)
	}
	if m.prospect_id != nil {
		fields = append(fields, conversation.FieldProspectID)
	}
	if m.lead_id != nil {
		fields = append(fields, conversation.FieldLeadID)
	}
	if m.status != nil {
		fields = append(fields, conversation.FieldStatus)
	}
	if m.last_watermark != nil {
		fields = append(fields, conversation.FieldLastWatermark)
	}
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conversation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldTenantID:
		return m.TenantID()
	case conversation.FieldChannelKind:
		return m.ChannelKind()
	case conversation.FieldChannelConfigID:
		return m.ChannelConfigID()
	case conversation.FieldContactID:
		return m.ContactID()
	case conversation.FieldProspectID:
		return m.ProspectID()
	case conversation.FieldLeadID:
		return m.LeadID()
	case conversation.FieldStatus:
		return m.Status()
	case conversation.FieldLastWatermark:
		return m.LastWatermark()
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	case conversation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldTenantID:
		return m.OldTenantID(ctx)
	case conversation.FieldChannelKind:
		return m.OldChannelKind(ctx)
	case conversation.FieldChannelConfigID:
		return m.OldChannelConfigID(ctx)
	case conversation.FieldContactID:
		return m.OldContactID(ctx)
	case conversation.FieldProspectID:
		return m.OldProspectID(ctx)
	case conversation.FieldLeadID:
		return m.OldLeadID(ctx)
	case conversation.FieldStatus:
		return m.OldStatus(ctx)
	case conversation.FieldLastWatermark:
		return m.OldLastWatermark(ctx)
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case conversation.FieldChannelKind:
		v, ok := value.(conversation.ChannelKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelKind(v)
		return nil
	case conversation.FieldChannelConfigID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelConfigID(v)
		return nil
	case conversation.FieldContactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactID(v)
		return nil
	case conversation.FieldProspectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProspectID(v)
		return nil
	case conversation.FieldLeadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case conversation.FieldStatus:
		v, ok := value.(conversation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case conversation.FieldLastWatermark:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastWatermark(v)
		return nil
	case conversation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldContactID) {
		fields = append(fields, conversation.FieldContactID)
	}
	if m.FieldCleared(conversation.FieldProspectID) {
		fields = append(fields, conversation.FieldProspectID)
	}
	if m.FieldCleared(conversation.FieldLeadID) {
		fields = append(fields, conversation.FieldLeadID)
	}
	if m.FieldCleared(conversation.FieldLastWatermark) {
		fields = append(fields, conversation.FieldLastWatermark)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMutation) ClearField(name string) error {
	switch name {
	case conversation.FieldContactID:
		m.ClearContactID()
		return nil
	case conversation.FieldProspectID:
		m.ClearProspectID()
		return nil
	case conversation.FieldLeadID:
		m.ClearLeadID()
		return nil
	case conversation.FieldLastWatermark:
		m.ClearLastWatermark()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldTenantID:
		m.ResetTenantID()
		return nil
	case conversation.FieldChannelKind:
		m.ResetChannelKind()
		return nil
	case conversation.FieldChannelConfigID:
		m.ResetChannelConfigID()
		return nil
	case conversation.FieldContactID:
		m.ResetContactID()
		return nil
	case conversation.FieldProspectID:
		m.ResetProspectID()
		return nil
	case conversation.FieldLeadID:
		m.ResetLeadID()
		return nil
	case conversation.FieldStatus:
		m.ResetStatus()
		return nil
	case conversation.FieldLastWatermark:
		m.ResetLastWatermark()
		return nil
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op              Op
	typ             string
	id              *string
	tenant_id       *string
	kind            *job.Kind
	payload         *map[string]interface{}
	priority        *int
	addpriority     *int
	status          *job.Status
	attempts        *int
	addattempts     *int
	max_attempts    *int
	addmax_attempts *int
	run_after       *time.Time
	lease_until     *time.Time
	worker_id       *string
	started_at      *time.Time
	completed_at    *time.Time
	error           *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Job, error)
	predicates      []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *JobMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *JobMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTenantID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ClearTenantID clears the value of the "tenant_id" field.
func (m *JobMutation) ClearTenantID() {
	m.tenant_id = nil
	m.clearedFields[job.FieldTenantID] = struct{}{}
}

// TenantIDCleared returns if the "tenant_id" field was cleared in this mutation.
func (m *JobMutation) TenantIDCleared() bool {
	_, ok := m.clearedFields[job.FieldTenantID]
	return ok
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *JobMutation) ResetTenantID() {
	m.tenant_id = nil
	delete(m.clearedFields, job.FieldTenantID)
}

// SetKind sets the "kind" field.
func (m *JobMutation) SetKind(j job.Kind) {
	m.kind = &j
}

// Kind returns the value of the "kind" field in the mutation.
func (m *JobMutation) Kind() (r job.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldKind(ctx context.Context) (v job.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *JobMutation) ResetKind() {
	m.kind = nil
}

// SetPayload sets the "payload" field.
func (m *JobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *JobMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[job.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *JobMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[job.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, job.FieldPayload)
}

// SetPriority sets the "priority" field.
func (m *JobMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *JobMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *JobMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *JobMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *JobMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *JobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *JobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *JobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *JobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *JobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *JobMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *JobMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *JobMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *JobMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *JobMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetRunAfter sets the "run_after" field.
func (m *JobMutation) SetRunAfter(t time.Time) {
	m.run_after = &t
}

// RunAfter returns the value of the "run_after" field in the mutation.
func (m *JobMutation) RunAfter() (r time.Time, exists bool) {
	v := m.run_after
	if v == nil {
		return
	}
	return *v, true
}

// OldRunAfter returns the old "run_after" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRunAfter(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunAfter: %w", err)
	}
	return oldValue.RunAfter, nil
}

// ResetRunAfter resets all changes to the "run_after" field.
func (m *JobMutation) ResetRunAfter() {
	m.run_after = nil
}

// SetLeaseUntil sets the "lease_until" field.
func (m *JobMutation) SetLeaseUntil(t time.Time) {
	m.lease_until = &t
}

// LeaseUntil returns the value of the "lease_until" field in the mutation.
func (m *JobMutation) LeaseUntil() (r time.Time, exists bool) {
	v := m.lease_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseUntil returns the old "lease_until" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLeaseUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseUntil: %w", err)
	}
	return oldValue.LeaseUntil, nil
}

// ClearLeaseUntil clears the value of the "lease_until" field.
func (m *JobMutation) ClearLeaseUntil() {
	m.lease_until = nil
	m.clearedFields[job.FieldLeaseUntil] = struct{}{}
}

// LeaseUntilCleared returns if the "lease_until" field was cleared in this mutation.
func (m *JobMutation) LeaseUntilCleared() bool {
	_, ok := m.clearedFields[job.FieldLeaseUntil]
	return ok
}

// ResetLeaseUntil resets all changes to the "lease_until" field.
func (m *JobMutation) ResetLeaseUntil() {
	m.lease_until = nil
	delete(m.clearedFields, job.FieldLeaseUntil)
}

// SetWorkerID sets the "worker_id" field.
func (m *JobMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *JobMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *JobMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[job.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *JobMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[job.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *JobMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, job.FieldWorkerID)
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// SetError sets the "error" field.
func (m *JobMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *JobMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *JobMutation) ClearError() {
	m.error = nil
	m.clearedFields[job.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *JobMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *JobMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, job.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.tenant_id != nil {
		fields = append(fields, job.FieldTenantID)
	}
	if m.kind != nil {
		fields = append(fields, job.FieldKind)
	}
	if m.payload != nil {
		fields = append(fields, job.FieldPayload)
	}
	if m.priority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.max_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	if m.run_after != nil {
		fields = append(fields, job.FieldRunAfter)
	}
	if m.lease_until != nil {
		fields = append(fields, job.FieldLeaseUntil)
	}
	if m.worker_id != nil {
		fields = append(fields, job.FieldWorkerID)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.error != nil {
		fields = append(fields, job.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldTenantID:
		return m.TenantID()
	case job.FieldKind:
		return m.Kind()
	case job.FieldPayload:
		return m.Payload()
	case job.FieldPriority:
		return m.Priority()
	case job.FieldStatus:
		return m.Status()
	case job.FieldAttempts:
		return m.Attempts()
	case job.FieldMaxAttempts:
		return m.MaxAttempts()
	case job.FieldRunAfter:
		return m.RunAfter()
	case job.FieldLeaseUntil:
		return m.LeaseUntil()
	case job.FieldWorkerID:
		return m.WorkerID()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	case job.FieldError:
		return m.Error()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldTenantID:
		return m.OldTenantID(ctx)
	case job.FieldKind:
		return m.OldKind(ctx)
	case job.FieldPayload:
		return m.OldPayload(ctx)
	case job.FieldPriority:
		return m.OldPriority(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldAttempts:
		return m.OldAttempts(ctx)
	case job.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case job.FieldRunAfter:
		return m.OldRunAfter(ctx)
	case job.FieldLeaseUntil:
		return m.OldLeaseUntil(ctx)
	case job.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case job.FieldError:
		return m.OldError(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case job.FieldKind:
		v, ok := value.(job.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case job.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case job.FieldRunAfter:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunAfter(v)
		return nil
	case job.FieldLeaseUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseUntil(v)
		return nil
	case job.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case job.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.addattempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldPriority:
		return m.AddedPriority()
	case job.FieldAttempts:
		return m.AddedAttempts()
	case job.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldTenantID) {
		fields = append(fields, job.FieldTenantID)
	}
	if m.FieldCleared(job.FieldPayload) {
		fields = append(fields, job.FieldPayload)
	}
	if m.FieldCleared(job.FieldLeaseUntil) {
		fields = append(fields, job.FieldLeaseUntil)
	}
	if m.FieldCleared(job.FieldWorkerID) {
		fields = append(fields, job.FieldWorkerID)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.FieldCleared(job.FieldError) {
		fields = append(fields, job.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldTenantID:
		m.ClearTenantID()
		return nil
	case job.FieldPayload:
		m.ClearPayload()
		return nil
	case job.FieldLeaseUntil:
		m.ClearLeaseUntil()
		return nil
	case job.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case job.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldTenantID:
		m.ResetTenantID()
		return nil
	case job.FieldKind:
		m.ResetKind()
		return nil
	case job.FieldPayload:
		m.ResetPayload()
		return nil
	case job.FieldPriority:
		m.ResetPriority()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldAttempts:
		m.ResetAttempts()
		return nil
	case job.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case job.FieldRunAfter:
		m.ResetRunAfter()
		return nil
	case job.FieldLeaseUntil:
		m.ResetLeaseUntil()
		return nil
	case job.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case job.FieldError:
		m.ResetError()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// LeadMutation represents an operation that mutates the Lead nodes in the graph.
type LeadMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	company_name  *string
	website       *string
	industry      *string
	source        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Lead, error)
	predicates    []predicate.Lead
}

var _ ent.Mutation = (*LeadMutation)(nil)

// leadOption allows management of the mutation configuration using functional options.
type leadOption func(*LeadMutation)

// newLeadMutation creates new mutation for the Lead entity.
func newLeadMutation(c config, op Op, opts ...leadOption) *LeadMutation {
	m := &LeadMutation{
		config:        c,
		op:            op,
		typ:           TypeLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadID sets the ID field of the mutation.
func withLeadID(id string) leadOption {
	return func(m *LeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Lead
		)
		m.oldValue = func(ctx context.Context) (*Lead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLead sets the old Lead of the mutation.
func withLead(node *Lead) leadOption {
	return func(m *LeadMutation) {
		m.oldValue = func(context.Context) (*Lead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Lead entities.
func (m *LeadMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *LeadMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *LeadMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *LeadMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetCompanyName sets the "company_name" field.
func (m *LeadMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *LeadMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *LeadMutation) ResetCompanyName() {
	m.company_name = nil
}

// SetWebsite sets the "website" field.
func (m *LeadMutation) SetWebsite(s string) {
	m.website = &s
}

// Website returns the value of the "website" field in the mutation.
func (m *LeadMutation) Website() (r string, exists bool) {
	v := m.website
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsite returns the old "website" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldWebsite(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsite: %w", err)
	}
	return oldValue.Website, nil
}

// ClearWebsite clears the value of the "website" field.
func (m *LeadMutation) ClearWebsite() {
	m.website = nil
	m.clearedFields[lead.FieldWebsite] = struct{}{}
}

// WebsiteCleared returns if the "website" field was cleared in this mutation.
func (m *LeadMutation) WebsiteCleared() bool {
	_, ok := m.clearedFields[lead.FieldWebsite]
	return ok
}

// ResetWebsite resets all changes to the "website" field.
func (m *LeadMutation) ResetWebsite() {
	m.website = nil
	delete(m.clearedFields, lead.FieldWebsite)
}

// SetIndustry sets the "industry" field.
func (m *LeadMutation) SetIndustry(s string) {
	m.industry = &s
}

// Industry returns the value of the "industry" field in the mutation.
func (m *LeadMutation) Industry() (r string, exists bool) {
	v := m.industry
	if v == nil {
		return
	}
	return *v, true
}

// OldIndustry returns the old "industry" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldIndustry(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndustry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndustry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndustry: %w", err)
	}
	return oldValue.Industry, nil
}

// ClearIndustry clears the value of the "industry" field.
func (m *LeadMutation) ClearIndustry() {
	m.industry = nil
	m.clearedFields[lead.FieldIndustry] = struct{}{}
}

// IndustryCleared returns if the "industry" field was cleared in this mutation.
func (m *LeadMutation) IndustryCleared() bool {
	_, ok := m.clearedFields[lead.FieldIndustry]
	return ok
}

// ResetIndustry resets all changes to the "industry" field.
func (m *LeadMutation) ResetIndustry() {
	m.industry = nil
	delete(m.clearedFields, lead.FieldIndustry)
}

// SetSource sets the "source" field.
func (m *LeadMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *LeadMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *LeadMutation) ClearSource() {
	m.source = nil
	m.clearedFields[lead.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *LeadMutation) SourceCleared() bool {
	_, ok := m.clearedFields[lead.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *LeadMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, lead.FieldSource)
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LeadMutation builder.
func (m *LeadMutation) Where(ps ...predicate.Lead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lead).
func (m *LeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, lead.FieldTenantID)
	}
	if m.company_name != nil {
		fields = append(fields, lead.FieldCompanyName)
	}
	if m.website != nil {
		fields = append(fields, lead.FieldWebsite)
	}
	if m.industry != nil {
		fields = append(fields, lead.FieldIndustry)
	}
	if m.source != nil {
		fields = append(fields, lead.FieldSource)
	}
	if m.created_at != nil {
		fields = append(fields, lead.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldTenantID:
		return m.TenantID()
	case lead.FieldCompanyName:
		return m.CompanyName()
	case lead.FieldWebsite:
		return m.Website()
	case lead.FieldIndustry:
		return m.Industry()
	case lead.FieldSource:
		return m.Source()
	case lead.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lead.FieldTenantID:
		return m.OldTenantID(ctx)
	case lead.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case lead.FieldWebsite:
		return m.OldWebsite(ctx)
	case lead.FieldIndustry:
		return m.OldIndustry(ctx)
	case lead.FieldSource:
		return m.OldSource(ctx)
	case lead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lead.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case lead.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case lead.FieldWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsite(v)
		return nil
	case lead.FieldIndustry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndustry(v)
		return nil
	case lead.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case lead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Lead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lead.FieldWebsite) {
		fields = append(fields, lead.FieldWebsite)
	}
	if m.FieldCleared(lead.FieldIndustry) {
		fields = append(fields, lead.FieldIndustry)
	}
	if m.FieldCleared(lead.FieldSource) {
		fields = append(fields, lead.FieldSource)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadMutation) ClearField(name string) error {
	switch name {
	case lead.FieldWebsite:
		m.ClearWebsite()
		return nil
	case lead.FieldIndustry:
		m.ClearIndustry()
		return nil
	case lead.FieldSource:
		m.ClearSource()
		return nil
	}
	return fmt.Errorf("unknown Lead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadMutation) ResetField(name string) error {
	switch name {
	case lead.FieldTenantID:
		m.ResetTenantID()
		return nil
	case lead.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case lead.FieldWebsite:
		m.ResetWebsite()
		return nil
	case lead.FieldIndustry:
		m.ResetIndustry()
		return nil
	case lead.FieldSource:
		m.ResetSource()
		return nil
	case lead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Lead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Lead edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op              Op
	typ             string
	id              *string
	tenant_id       *string
	conversation_id *string
	direction       *message.Direction
	content         *string
	external_id     *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Message, error)
	predicates      []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *MessageMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *MessageMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *MessageMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetConversationID sets the "conversation_id" field.
func (m *MessageMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *MessageMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *MessageMutation) ResetConversationID() {
	m.conversation_id = nil
}

// SetDirection sets the "direction" field.
func (m *MessageMutation) SetDirection(value message.Direction) {
	m.direction = &value
}

// Direction returns the value of the "direction" field in the mutation.
func (m *MessageMutation) Direction() (r message.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldDirection(ctx context.Context) (v message.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *MessageMutation) ResetDirection() {
	m.direction = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetExternalID sets the "external_id" field.
func (m *MessageMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *MessageMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldExternalID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ClearExternalID clears the value of the "external_id" field.
func (m *MessageMutation) ClearExternalID() {
	m.external_id = nil
	m.clearedFields[message.FieldExternalID] = struct{}{}
}

// ExternalIDCleared returns if the "external_id" field was cleared in this mutation.
func (m *MessageMutation) ExternalIDCleared() bool {
	_, ok := m.clearedFields[message.FieldExternalID]
	return ok
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *MessageMutation) ResetExternalID() {
	m.external_id = nil
	delete(m.clearedFields, message.FieldExternalID)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, message.FieldTenantID)
	}
	if m.conversation_id != nil {
		fields = append(fields, message.FieldConversationID)
	}
	if m.direction != nil {
		fields = append(fields, message.FieldDirection)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.external_id != nil {
		fields = append(fields, message.FieldExternalID)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldTenantID:
		return m.TenantID()
	case message.FieldConversationID:
		return m.ConversationID()
	case message.FieldDirection:
		return m.Direction()
	case message.FieldContent:
		return m.Content()
	case message.FieldExternalID:
		return m.ExternalID()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldTenantID:
		return m.OldTenantID(ctx)
	case message.FieldConversationID:
		return m.OldConversationID(ctx)
	case message.FieldDirection:
		return m.OldDirection(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldExternalID:
		return m.OldExternalID(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case message.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case message.FieldDirection:
		v, ok := value.(message.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldExternalID) {
		fields = append(fields, message.FieldExternalID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldExternalID:
		m.ClearExternalID()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldTenantID:
		m.ResetTenantID()
		return nil
	case message.FieldConversationID:
		m.ResetConversationID()
		return nil
	case message.FieldDirection:
		m.ResetDirection()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldExternalID:
		m.ResetExternalID()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Message edge %s", name)
}

// ProspectMutation represents an operation that mutates the Prospect nodes in the graph.
type ProspectMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	tenant_id           *string
	group_id            *string
	channel_config_id   *string
	display_name        *string
	username            *string
	phone               *string
	telegram_user_id    *int64
	addtelegram_user_id *int64
	status              *prospect.Status
	last_messaged_at    *time.Time
	last_replied_at     *time.Time
	last_external_id    *string
	converted_lead_id   *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Prospect, error)
	predicates          []predicate.Prospect
}

var _ ent.Mutation = (*ProspectMutation)(nil)

// prospectOption allows management of the mutation configuration using functional options.
type prospectOption func(*ProspectMutation)

// newProspectMutation creates new mutation for the Prospect entity.
func newProspectMutation(c config, op Op, opts ...prospectOption) *ProspectMutation {
	m := &ProspectMutation{
		config:        c,
		op:            op,
		typ:           TypeProspect,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProspectID sets the ID field of the mutation.
func withProspectID(id string) prospectOption {
	return func(m *ProspectMutation) {
		var (
			err   error
			once  sync.Once
			value *Prospect
		)
		m.oldValue = func(ctx context.Context) (*Prospect, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Prospect.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProspect sets the old Prospect of the mutation.
func withProspect(node *Prospect) prospectOption {
	return func(m *ProspectMutation) {
		m.oldValue = func(context.Context) (*Prospect, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProspectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProspectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Prospect entities.
func (m *ProspectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProspectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProspectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Prospect.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ProspectMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ProspectMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ProspectMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetGroupID sets the "group_id" field.
func (m *ProspectMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *ProspectMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldGroupID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ClearGroupID clears the value of the "group_id" field.
func (m *ProspectMutation) ClearGroupID() {
	m.group_id = nil
	m.clearedFields[prospect.FieldGroupID] = struct{}{}
}

// GroupIDCleared returns if the "group_id" field was cleared in this mutation.
func (m *ProspectMutation) GroupIDCleared() bool {
	_, ok := m.clearedFields[prospect.FieldGroupID]
	return ok
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *ProspectMutation) ResetGroupID() {
	m.group_id = nil
	delete(m.clearedFields, prospect.FieldGroupID)
}

// SetChannelConfigID sets the "channel_config_id" field.
func (m *ProspectMutation) SetChannelConfigID(s string) {
	m.channel_config_id = &s
}

// ChannelConfigID returns the value of the "channel_config_id" field in the mutation.
func (m *ProspectMutation) ChannelConfigID() (r string, exists bool) {
	v := m.channel_config_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelConfigID returns the old "channel_config_id" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldChannelConfigID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelConfigID: %w", err)
	}
	return oldValue.ChannelConfigID, nil
}

// ResetChannelConfigID resets all changes to the "channel_config_id" field.
func (m *ProspectMutation) ResetChannelConfigID() {
	m.channel_config_id = nil
}

// SetDisplayName sets the "display_name" field.
func (m *ProspectMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *ProspectMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *ProspectMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetUsername sets the "username" field.
func (m *ProspectMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *ProspectMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldUsername(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ClearUsername clears the value of the "username" field.
func (m *ProspectMutation) ClearUsername() {
	m.username = nil
	m.clearedFields[prospect.FieldUsername] = struct{}{}
}

// UsernameCleared returns if the "username" field was cleared in this mutation.
func (m *ProspectMutation) UsernameCleared() bool {
	_, ok := m.clearedFields[prospect.FieldUsername]
	return ok
}

// ResetUsername resets all changes to the "username" field.
func (m *ProspectMutation) ResetUsername() {
	m.username = nil
	delete(m.clearedFields, prospect.FieldUsername)
}

// SetPhone sets the "phone" field.
func (m *ProspectMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ProspectMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ProspectMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[prospect.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ProspectMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[prospect.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ProspectMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, prospect.FieldPhone)
}

// SetTelegramUserID sets the "telegram_user_id" field.
func (m *ProspectMutation) SetTelegramUserID(i int64) {
	m.telegram_user_id = &i
	m.addtelegram_user_id = nil
}

// TelegramUserID returns the value of the "telegram_user_id" field in the mutation.
func (m *ProspectMutation) TelegramUserID() (r int64, exists bool) {
	v := m.telegram_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTelegramUserID returns the old "telegram_user_id" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldTelegramUserID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelegramUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelegramUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelegramUserID: %w", err)
	}
	return oldValue.TelegramUserID, nil
}

// AddTelegramUserID adds i to the "telegram_user_id" field.
func (m *ProspectMutation) AddTelegramUserID(i int64) {
	if m.addtelegram_user_id != nil {
		*m.addtelegram_user_id += i
	} else {
		m.addtelegram_user_id = &i
	}
}

// AddedTelegramUserID returns the value that was added to the "telegram_user_id" field in this mutation.
func (m *ProspectMutation) AddedTelegramUserID() (r int64, exists bool) {
	v := m.addtelegram_user_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearTelegramUserID clears the value of the "telegram_user_id" field.
func (m *ProspectMutation) ClearTelegramUserID() {
	m.telegram_user_id = nil
	m.addtelegram_user_id = nil
	m.clearedFields[prospect.FieldTelegramUserID] = struct{}{}
}

// TelegramUserIDCleared returns if the "telegram_user_id" field was cleared in this mutation.
func (m *ProspectMutation) TelegramUserIDCleared() bool {
	_, ok := m.clearedFields[prospect.FieldTelegramUserID]
	return ok
}

// ResetTelegramUserID resets all changes to the "telegram_user_id" field.
func (m *ProspectMutation) ResetTelegramUserID() {
	m.telegram_user_id = nil
	m.addtelegram_user_id = nil
	delete(m.clearedFields, prospect.FieldTelegramUserID)
}

// SetStatus sets the "status" field.
func (m *ProspectMutation) SetStatus(pr prospect.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProspectMutation) Status() (r prospect.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldStatus(ctx context.Context) (v prospect.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProspectMutation) ResetStatus() {
	m.status = nil
}

// SetLastMessagedAt sets the "last_messaged_at" field.
func (m *ProspectMutation) SetLastMessagedAt(t time.Time) {
	m.last_messaged_at = &t
}

// LastMessagedAt returns the value of the "last_messaged_at" field in the mutation.
func (m *ProspectMutation) LastMessagedAt() (r time.Time, exists bool) {
	v := m.last_messaged_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMessagedAt returns the old "last_messaged_at" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldLastMessagedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMessagedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMessagedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMessagedAt: %w", err)
	}
	return oldValue.LastMessagedAt, nil
}

// ClearLastMessagedAt clears the value of the "last_messaged_at" field.
func (m *ProspectMutation) ClearLastMessagedAt() {
	m.last_messaged_at = nil
	m.clearedFields[prospect.FieldLastMessagedAt] = struct{}{}
}

// LastMessagedAtCleared returns if the "last_messaged_at" field was cleared in this mutation.
func (m *ProspectMutation) LastMessagedAtCleared() bool {
	_, ok := m.clearedFields[prospect.FieldLastMessagedAt]
	return ok
}

// ResetLastMessagedAt resets all changes to the "last_messaged_at" field.
func (m *ProspectMutation) ResetLastMessagedAt() {
	m.last_messaged_at = nil
	delete(m.clearedFields, prospect.FieldLastMessagedAt)
}

// SetLastRepliedAt sets the "last_replied_at" field.
func (m *ProspectMutation) SetLastRepliedAt(t time.Time) {
	m.last_replied_at = &t
}

// LastRepliedAt returns the value of the "last_replied_at" field in the mutation.
func (m *ProspectMutation) LastRepliedAt() (r time.Time, exists bool) {
	v := m.last_replied_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRepliedAt returns the old "last_replied_at" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldLastRepliedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRepliedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRepliedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRepliedAt: %w", err)
	}
	return oldValue.LastRepliedAt, nil
}

// ClearLastRepliedAt clears the value of the "last_replied_at" field.
func (m *ProspectMutation) ClearLastRepliedAt() {
	m.last_replied_at = nil
	m.clearedFields[prospect.FieldLastRepliedAt] = struct{}{}
}

// LastRepliedAtCleared returns if the "last_replied_at" field was cleared in this mutation.
func (m *ProspectMutation) LastRepliedAtCleared() bool {
	_, ok := m.clearedFields[prospect.FieldLastRepliedAt]
	return ok
}

// ResetLastRepliedAt resets all changes to the "last_replied_at" field.
func (m *ProspectMutation) ResetLastRepliedAt() {
	m.last_replied_at = nil
	delete(m.clearedFields, prospect.FieldLastRepliedAt)
}

// SetLastExternalID sets the "last_external_id" field.
func (m *ProspectMutation) SetLastExternalID(s string) {
	m.last_external_id = &s
}

// LastExternalID returns the value of the "last_external_id" field in the mutation.
func (m *ProspectMutation) LastExternalID() (r string, exists bool) {
	v := m.last_external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastExternalID returns the old "last_external_id" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldLastExternalID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastExternalID: %w", err)
	}
	return oldValue.LastExternalID, nil
}

// ClearLastExternalID clears the value of the "last_external_id" field.
func (m *ProspectMutation) ClearLastExternalID() {
	m.last_external_id = nil
	m.clearedFields[prospect.FieldLastExternalID] = struct{}{}
}

// LastExternalIDCleared returns if the "last_external_id" field was cleared in this mutation.
func (m *ProspectMutation) LastExternalIDCleared() bool {
	_, ok := m.clearedFields[prospect.FieldLastExternalID]
	return ok
}

// ResetLastExternalID resets all changes to the "last_external_id" field.
func (m *ProspectMutation) ResetLastExternalID() {
	m.last_external_id = nil
	delete(m.clearedFields, prospect.FieldLastExternalID)
}

// SetConvertedLeadID sets the "converted_lead_id" field.
func (m *ProspectMutation) SetConvertedLeadID(s string) {
	m.converted_lead_id = &s
}

// ConvertedLeadID returns the value of the "converted_lead_id" field in the mutation.
func (m *ProspectMutation) ConvertedLeadID() (r string, exists bool) {
	v := m.converted_lead_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConvertedLeadID returns the old "converted_lead_id" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldConvertedLeadID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConvertedLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConvertedLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConvertedLeadID: %w", err)
	}
	return oldValue.ConvertedLeadID, nil
}

// ClearConvertedLeadID clears the value of the "converted_lead_id" field.
func (m *ProspectMutation) ClearConvertedLeadID() {
	m.converted_lead_id = nil
	m.clearedFields[prospect.FieldConvertedLeadID] = struct{}{}
}

// ConvertedLeadIDCleared returns if the "converted_lead_id" field was cleared in this mutation.
func (m *ProspectMutation) ConvertedLeadIDCleared() bool {
	_, ok := m.clearedFields[prospect.FieldConvertedLeadID]
	return ok
}

// ResetConvertedLeadID resets all changes to the "converted_lead_id" field.
func (m *ProspectMutation) ResetConvertedLeadID() {
	m.converted_lead_id = nil
	delete(m.clearedFields, prospect.FieldConvertedLeadID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProspectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProspectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProspectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProspectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProspectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Prospect entity.
// If the Prospect object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProspectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProspectMutation builder.
func (m *ProspectMutation) Where(ps ...predicate.Prospect) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProspectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProspectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Prospect, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProspectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProspectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Prospect).
func (m *ProspectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProspectMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.tenant_id != nil {
		fields = append(fields, prospect.FieldTenantID)
	}
	if m.group_id != nil {
		fields = append(fields, prospect.FieldGroupID)
	}
	if m.channel_config_id != nil {
		fields = append(fields, prospect.FieldChannelConfigID)
	}
	if m.display_name != nil {
		fields = append(fields, prospect.FieldDisplayName)
	}
	if m.username != nil {
		fields = append(fields, prospect.FieldUsername)
	}
	if m.phone != nil {
		fields = append(fields, prospect.FieldPhone)
	}
	if m.telegram_user_id != nil {
		fields = append(fields, prospect.FieldTelegramUserID)
	}
	if m.status != nil {
		fields = append(fields, prospect.FieldStatus)
	}
	if m.last_messaged_at != nil {
		fields = append(fields, prospect.FieldLastMessagedAt)
	}
	if m.last_replied_at != nil {
		fields = append(fields, prospect.FieldLastRepliedAt)
	}
	if m.last_external_id != nil {
		fields = append(fields, prospect.FieldLastExternalID)
	}
	if m.converted_lead_id != nil {
		fields = append(fields, prospect.FieldConvertedLeadID)
	}
	if m.created_at != nil {
		fields = append(fields, prospect.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, prospect.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProspectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prospect.FieldTenantID:
		return m.TenantID()
	case prospect.FieldGroupID:
		return m.GroupID()
	case prospect.FieldChannelConfigID:
		return m.ChannelConfigID()
	case prospect.FieldDisplayName:
		return m.DisplayName()
	case prospect.FieldUsername:
		return m.Username()
	case prospect.FieldPhone:
		return m.Phone()
	case prospect.FieldTelegramUserID:
		return m.TelegramUserID()
	case prospect.FieldStatus:
		return m.Status()
	case prospect.FieldLastMessagedAt:
		return m.LastMessagedAt()
	case prospect.FieldLastRepliedAt:
		return m.LastRepliedAt()
	case prospect.FieldLastExternalID:
		return m.LastExternalID()
	case prospect.FieldConvertedLeadID:
		return m.ConvertedLeadID()
	case prospect.FieldCreatedAt:
		return m.CreatedAt()
	case prospect.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProspectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prospect.FieldTenantID:
		return m.OldTenantID(ctx)
	case prospect.FieldGroupID:
		return m.OldGroupID(ctx)
	case prospect.FieldChannelConfigID:
		return m.OldChannelConfigID(ctx)
	case prospect.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case prospect.FieldUsername:
		return m.OldUsername(ctx)
	case prospect.FieldPhone:
		return m.OldPhone(ctx)
	case prospect.FieldTelegramUserID:
		return m.OldTelegramUserID(ctx)
	case prospect.FieldStatus:
		return m.OldStatus(ctx)
	case prospect.FieldLastMessagedAt:
		return m.OldLastMessagedAt(ctx)
	case prospect.FieldLastRepliedAt:
		return m.OldLastRepliedAt(ctx)
	case prospect.FieldLastExternalID:
		return m.OldLastExternalID(ctx)
	case prospect.FieldConvertedLeadID:
		return m.OldConvertedLeadID(ctx)
	case prospect.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case prospect.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Prospect field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProspectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prospect.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case prospect.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case prospect.FieldChannelConfigID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelConfigID(v)
		return nil
	case prospect.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case prospect.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case prospect.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case prospect.FieldTelegramUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelegramUserID(v)
		return nil
	case prospect.FieldStatus:
		v, ok := value.(prospect.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case prospect.FieldLastMessagedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMessagedAt(v)
		return nil
	case prospect.FieldLastRepliedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRepliedAt(v)
		return nil
	case prospect.FieldLastExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastExternalID(v)
		return nil
	case prospect.FieldConvertedLeadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConvertedLeadID(v)
		return nil
	case prospect.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case prospect.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Prospect field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProspectMutation) AddedFields() []string {
	var fields []string
	if m.addtelegram_user_id != nil {
		fields = append(fields, prospect.FieldTelegramUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProspectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case prospect.FieldTelegramUserID:
		return m.AddedTelegramUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProspectMutation) AddField(name string, value ent.Value) error {
	switch name {
	case prospect.FieldTelegramUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTelegramUserID(v)
		return nil
	}
	return fmt.Errorf("unknown Prospect numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProspectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prospect.FieldGroupID) {
		fields = append(fields, prospect.FieldGroupID)
	}
	if m.FieldCleared(prospect.FieldUsername) {
		fields = append(fields, prospect.FieldUsername)
	}
	if m.FieldCleared(prospect.FieldPhone) {
		fields = append(fields, prospect.FieldPhone)
	}
	if m.FieldCleared(prospect.FieldTelegramUserID) {
		fields = append(fields, prospect.FieldTelegramUserID)
	}
	if m.FieldCleared(prospect.FieldLastMessagedAt) {
		fields = append(fields, prospect.FieldLastMessagedAt)
	}
	if m.FieldCleared(prospect.FieldLastRepliedAt) {
		fields = append(fields, prospect.FieldLastRepliedAt)
	}
	if m.FieldCleared(prospect.FieldLastExternalID) {
		fields = append(fields, prospect.FieldLastExternalID)
	}
	if m.FieldCleared(prospect.FieldConvertedLeadID) {
		fields = append(fields, prospect.FieldConvertedLeadID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProspectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProspectMutation) ClearField(name string) error {
	switch name {
	case prospect.FieldGroupID:
		m.ClearGroupID()
		return nil
	case prospect.FieldUsername:
		m.ClearUsername()
		return nil
	case prospect.FieldPhone:
		m.ClearPhone()
		return nil
	case prospect.FieldTelegramUserID:
		m.ClearTelegramUserID()
		return nil
	case prospect.FieldLastMessagedAt:
		m.ClearLastMessagedAt()
		return nil
	case prospect.FieldLastRepliedAt:
		m.ClearLastRepliedAt()
		return nil
	case prospect.FieldLastExternalID:
		m.ClearLastExternalID()
		return nil
	case prospect.FieldConvertedLeadID:
		m.ClearConvertedLeadID()
		return nil
	}
	return fmt.Errorf("unknown Prospect nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProspectMutation) ResetField(name string) error {
	switch name {
	case prospect.FieldTenantID:
		m.ResetTenantID()
		return nil
	case prospect.FieldGroupID:
		m.ResetGroupID()
		return nil
	case prospect.FieldChannelConfigID:
		m.ResetChannelConfigID()
		return nil
	case prospect.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case prospect.FieldUsername:
		m.ResetUsername()
		return nil
	case prospect.FieldPhone:
		m.ResetPhone()
		return nil
	case prospect.FieldTelegramUserID:
		m.ResetTelegramUserID()
		return nil
	case prospect.FieldStatus:
		m.ResetStatus()
		return nil
	case prospect.FieldLastMessagedAt:
		m.ResetLastMessagedAt()
		return nil
	case prospect.FieldLastRepliedAt:
		m.ResetLastRepliedAt()
		return nil
	case prospect.FieldLastExternalID:
		m.ResetLastExternalID()
		return nil
	case prospect.FieldConvertedLeadID:
		m.ResetConvertedLeadID()
		return nil
	case prospect.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case prospect.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Prospect field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProspectMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProspectMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProspectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProspectMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProspectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProspectMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProspectMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Prospect unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProspectMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Prospect edge %s", name)
}

// ProspectGroupMutation represents an operation that mutates the ProspectGroup nodes in the graph.
type ProspectGroupMutation struct {
	config
	op                Op
	typ               string
	id                *string
	tenant_id         *string
	channel_config_id *string
	external_id       *string
	name              *string
	member_count      *int
	addmember_count   *int
	imported_at       *time.Time
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ProspectGroup, error)
	predicates        []predicate.ProspectGroup
}

var _ ent.Mutation = (*ProspectGroupMutation)(nil)

// prospectgroupOption allows management of the mutation configuration using functional options.
type prospectgroupOption func(*ProspectGroupMutation)

// newProspectGroupMutation creates new mutation for the ProspectGroup entity.
func newProspectGroupMutation(c config, op Op, opts ...prospectgroupOption) *ProspectGroupMutation {
	m := &ProspectGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeProspectGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProspectGroupID sets the ID field of the mutation.
func withProspectGroupID(id string) prospectgroupOption {
	return func(m *ProspectGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *ProspectGroup
		)
		m.oldValue = func(ctx context.Context) (*ProspectGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProspectGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProspectGroup sets the old ProspectGroup of the mutation.
func withProspectGroup(node *ProspectGroup) prospectgroupOption {
	return func(m *ProspectGroupMutation) {
		m.oldValue = func(context.Context) (*ProspectGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProspectGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProspectGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProspectGroup entities.
func (m *ProspectGroupMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProspectGroupMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProspectGroupMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProspectGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ProspectGroupMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ProspectGroupMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ProspectGroup entity.
// If the ProspectGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectGroupMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ProspectGroupMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetChannelConfigID sets the "channel_config_id" field.
func (m *ProspectGroupMutation) SetChannelConfigID(s string) {
	m.channel_config_id = &s
}

// ChannelConfigID returns the value of the "channel_config_id" field in the mutation.
func (m *ProspectGroupMutation) ChannelConfigID() (r string, exists bool) {
	v := m.channel_config_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelConfigID returns the old "channel_config_id" field's value of the ProspectGroup entity.
// If the ProspectGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectGroupMutation) OldChannelConfigID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelConfigID: %w", err)
	}
	return oldValue.ChannelConfigID, nil
}

// ResetChannelConfigID resets all changes to the "channel_config_id" field.
func (m *ProspectGroupMutation) ResetChannelConfigID() {
	m.channel_config_id = nil
}

// SetExternalID sets the "external_id" field.
func (m *ProspectGroupMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *ProspectGroupMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the ProspectGroup entity.
// If the ProspectGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectGroupMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *ProspectGroupMutation) ResetExternalID() {
	m.external_id = nil
}

// SetName sets the "name" field.
func (m *ProspectGroupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProspectGroupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ProspectGroup entity.
// If the ProspectGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectGroupMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProspectGroupMutation) ResetName() {
	m.name = nil
}

// SetMemberCount sets the "member_count" field.
func (m *ProspectGroupMutation) SetMemberCount(i int) {
	m.member_count = &i
	m.addmember_count = nil
}

// MemberCount returns the value of the "member_count" field in the mutation.
func (m *ProspectGroupMutation) MemberCount() (r int, exists bool) {
	v := m.member_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberCount returns the old "member_count" field's value of the ProspectGroup entity.
// If the ProspectGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectGroupMutation) OldMemberCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberCount: %w", err)
	}
	return oldValue.MemberCount, nil
}

// AddMemberCount adds i to the "member_count" field.
func (m *ProspectGroupMutation) AddMemberCount(i int) {
	if m.addmember_count != nil {
		*m.addmember_count += i
	} else {
		m.addmember_count = &i
	}
}

// AddedMemberCount returns the value that was added to the "member_count" field in this mutation.
func (m *ProspectGroupMutation) AddedMemberCount() (r int, exists bool) {
	v := m.addmember_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemberCount resets all changes to the "member_count" field.
func (m *ProspectGroupMutation) ResetMemberCount() {
	m.member_count = nil
	m.addmember_count = nil
}

// SetImportedAt sets the "imported_at" field.
func (m *ProspectGroupMutation) SetImportedAt(t time.Time) {
	m.imported_at = &t
}

// ImportedAt returns the value of the "imported_at" field in the mutation.
func (m *ProspectGroupMutation) ImportedAt() (r time.Time, exists bool) {
	v := m.imported_at
	if v == nil {
		return
	}
	return *v, true
}

// OldImportedAt returns the old "imported_at" field's value of the ProspectGroup entity.
// If the ProspectGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectGroupMutation) OldImportedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportedAt: %w", err)
	}
	return oldValue.ImportedAt, nil
}

// ResetImportedAt resets all changes to the "imported_at" field.
func (m *ProspectGroupMutation) ResetImportedAt() {
	m.imported_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProspectGroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProspectGroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProspectGroup entity.
// If the ProspectGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProspectGroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProspectGroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ProspectGroupMutation builder.
func (m *ProspectGroupMutation) Where(ps ...predicate.ProspectGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProspectGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProspectGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProspectGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProspectGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProspectGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProspectGroup).
func (m *ProspectGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProspectGroupMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant_id != nil {
		fields = append(fields, prospectgroup.FieldTenantID)
	}
	if m.channel_config_id != nil {
		fields = append(fields, prospectgroup.FieldChannelConfigID)
	}
	if m.external_id != nil {
		fields = append(fields, prospectgroup.FieldExternalID)
	}
	if m.name != nil {
		fields = append(fields, prospectgroup.FieldName)
	}
	if m.member_count != nil {
		fields = append(fields, prospectgroup.FieldMemberCount)
	}
	if m.imported_at != nil {
		fields = append(fields, prospectgroup.FieldImportedAt)
	}
	if m.created_at != nil {
		fields = append(fields, prospectgroup.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProspectGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prospectgroup.FieldTenantID:
		return m.TenantID()
	case prospectgroup.FieldChannelConfigID:
		return m.ChannelConfigID()
	case prospectgroup.FieldExternalID:
		return m.ExternalID()
	case prospectgroup.FieldName:
		return m.Name()
	case prospectgroup.FieldMemberCount:
		return m.MemberCount()
	case prospectgroup.FieldImportedAt:
		return m.ImportedAt()
	case prospectgroup.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProspectGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prospectgroup.FieldTenantID:
		return m.OldTenantID(ctx)
	case prospectgroup.FieldChannelConfigID:
		return m.OldChannelConfigID(ctx)
	case prospectgroup.FieldExternalID:
		return m.OldExternalID(ctx)
	case prospectgroup.FieldName:
		return m.OldName(ctx)
	case prospectgroup.FieldMemberCount:
		return m.OldMemberCount(ctx)
	case prospectgroup.FieldImportedAt:
		return m.OldImportedAt(ctx)
	case prospectgroup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProspectGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProspectGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prospectgroup.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case prospectgroup.FieldChannelConfigID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelConfigID(v)
		return nil
	case prospectgroup.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case prospectgroup.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case prospectgroup.FieldMemberCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberCount(v)
		return nil
	case prospectgroup.FieldImportedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportedAt(v)
		return nil
	case prospectgroup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProspectGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProspectGroupMutation) AddedFields() []string {
	var fields []string
	if m.addmember_count != nil {
		fields = append(fields, prospectgroup.FieldMemberCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProspectGroupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case prospectgroup.FieldMemberCount:
		return m.AddedMemberCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProspectGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	case prospectgroup.FieldMemberCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemberCount(v)
		return nil
	}
	return fmt.Errorf("unknown ProspectGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProspectGroupMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProspectGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProspectGroupMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProspectGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProspectGroupMutation) ResetField(name string) error {
	switch name {
	case prospectgroup.FieldTenantID:
		m.ResetTenantID()
		return nil
	case prospectgroup.FieldChannelConfigID:
		m.ResetChannelConfigID()
		return nil
	case prospectgroup.FieldExternalID:
		m.ResetExternalID()
		return nil
	case prospectgroup.FieldName:
		m.ResetName()
		return nil
	case prospectgroup.FieldMemberCount:
		m.ResetMemberCount()
		return nil
	case prospectgroup.FieldImportedAt:
		m.ResetImportedAt()
		return nil
	case prospectgroup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProspectGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProspectGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProspectGroupMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProspectGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProspectGroupMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProspectGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProspectGroupMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProspectGroupMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProspectGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProspectGroupMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProspectGroup edge %s", name)
}

// RecipientMutation represents an operation that mutates the Recipient nodes in the graph.
type RecipientMutation struct {
	config
	op              Op
	typ             string
	id              *string
	tenant_id       *string
	campaign_id     *string
	lead_id         *string
	contact_id      *string
	prospect_id     *string
	status          *recipient.Status
	current_step    *int
	addcurrent_step *int
	next_action_at  *time.Time
	metadata        *map[string]interface{}
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Recipient, error)
	predicates      []predicate.Recipient
}

var _ ent.Mutation = (*RecipientMutation)(nil)

// recipientOption allows management of the mutation configuration using functional options.
type recipientOption func(*RecipientMutation)

// newRecipientMutation creates new mutation for the Recipient entity.
func newRecipientMutation(c config, op Op, opts ...recipientOption) *RecipientMutation {
	m := &RecipientMutation{
		config:        c,
		op:            op,
		typ:           TypeRecipient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecipientID sets the ID field of the mutation.
func withRecipientID(id string) recipientOption {
	return func(m *RecipientMutation) {
		var (
			err   error
			once  sync.Once
			value *Recipient
		)
		m.oldValue = func(ctx context.Context) (*Recipient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Recipient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecipient sets the old Recipient of the mutation.
func withRecipient(node *Recipient) recipientOption {
	return func(m *RecipientMutation) {
		m.oldValue = func(context.Context) (*Recipient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecipientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecipientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Recipient entities.
func (m *RecipientMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecipientMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecipientMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Recipient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *RecipientMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *RecipientMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Recipient entity.
// If the Recipient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipientMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *RecipientMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetCampaignID sets the "campaign_id" field.
func (m *RecipientMutation) SetCampaignID(s string) {
	m.campaign_id = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *RecipientMutation) CampaignID() (r string, exists bool) {
	v := m.campaign_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the Recipient entity.
// If the Recipient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipientMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *RecipientMutation) ResetCampaignID() {
	m.campaign_id = nil
}

// SetLeadID sets the "lead_id" field.
func (m *RecipientMutation) SetLeadID(s string) {
	m.lead_id = &s
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *RecipientMutation) LeadID() (r string, exists bool) {
	v := m.lead_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the Recipient entity.
// If the Recipient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipientMutation) OldLeadID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ClearLeadID clears the value of the "lead_id" field.
func (m *RecipientMutation) ClearLeadID() {
	m.lead_id = nil
	m.clearedFields[recipient.FieldLeadID] = struct{}{}
}

// LeadIDCleared returns if the "lead_id" field was cleared in this mutation.
func (m *RecipientMutation) LeadIDCleared() bool {
	_, ok := m.clearedFields[recipient.FieldLeadID]
	return ok
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *RecipientMutation) ResetLeadID() {
	m.lead_id = nil
	delete(m.clearedFields, recipient.FieldLeadID)
}

// SetContactID sets the "contact_id" field.
func (m *RecipientMutation) SetContactID(s string) {
	m.contact_id = &s
}

// ContactID returns the value of the "contact_id" field in the mutation.
func (m *RecipientMutation) ContactID() (r string, exists bool) {
	v := m.contact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContactID returns the old "contact_id" field's value of the Recipient entity.
// If the Recipient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipientMutation) OldContactID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactID: %w", err)
	}
	return oldValue.ContactID, nil
}

// ClearContactID clears the value of the "contact_id" field.
func (m *RecipientMutation) ClearContactID() {
	m.contact_id = nil
	m.clearedFields[recipient.FieldContactID] = struct{}{}
}

// ContactIDCleared returns if the "contact_id" field was cleared in this mutation.
func (m *RecipientMutation) ContactIDCleared() bool {
	_, ok := m.clearedFields[recipient.FieldContactID]
	return ok
}

// ResetContactID resets all changes to the "contact_id" field.
func (m *RecipientMutation) ResetContactID() {
	m.contact_id = nil
	delete(m.clearedFields, recipient.FieldContactID)
}

// SetProspectID sets the "prospect_id" field.
func (m *RecipientMutation) SetProspectID(s string) {
	m.prospect_id = &s
}

// ProspectID returns the value of the "prospect_id" field in the mutation.
func (m *RecipientMutation) ProspectID() (r string, exists bool) {
	v := m.prospect_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProspectID returns the old "prospect_id" field's value of the Recipient entity.
// If the Recipient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipientMutation) OldProspectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProspectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProspectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProspectID: %w", err)
	}
	return oldValue.ProspectID, nil
}

// ClearProspectID clears the value of the "prospect_id" field.
func (m *RecipientMutation) ClearProspectID() {
	m.prospect_id = nil
	m.clearedFields[recipient.FieldProspectID] = struct{}{}
}

// ProspectIDCleared returns if the "prospect_id" field was cleared in this mutation.
func (m *RecipientMutation) ProspectIDCleared() bool {
	_, ok := m.clearedFields[recipient.FieldProspectID]
	return ok
}

// ResetProspectID resets all changes to the "prospect_id" field.
func (m *RecipientMutation) ResetProspectID() {
	m.prospect_id = nil
	delete(m.clearedFields, recipient.FieldProspectID)
}

// SetStatus sets the "status" field.
func (m *RecipientMutation) SetStatus(r recipient.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RecipientMutation) Status() (r recipient.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Recipient entity.
// If the Recipient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipientMutation) OldStatus(ctx context.Context) (v recipient.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RecipientMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentStep sets the "current_step" field.
func (m *RecipientMutation) SetCurrentStep(i int) {
	m.current_step = &i
	m.addcurrent_step = nil
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *RecipientMutation) CurrentStep() (r int, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the Recipient entity.
// If the Recipient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipientMutation) OldCurrentStep(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// AddCurrentStep adds i to the "current_step" field.
func (m *RecipientMutation) AddCurrentStep(i int) {
	if m.addcurrent_step != nil {
		*m.addcurrent_step += i
	} else {
		m.addcurrent_step = &i
	}
}

// AddedCurrentStep returns the value that was added to the "current_step" field in this mutation.
func (m *RecipientMutation) AddedCurrentStep() (r int, exists bool) {
	v := m.addcurrent_step
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *RecipientMutation) ResetCurrentStep() {
	m.current_step = nil
	m.addcurrent_step = nil
}

// SetNextActionAt sets the "next_action_at" field.
func (m *RecipientMutation) SetNextActionAt(t time.Time) {
	m.next_action_at = &t
}

// NextActionAt returns the value of the "next_action_at" field in the mutation.
func (m *RecipientMutation) NextActionAt() (r time.Time, exists bool) {
	v := m.next_action_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextActionAt returns the old "next_action_at" field's value of the Recipient entity.
// If the Recipient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipientMutation) OldNextActionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextActionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextActionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextActionAt: %w", err)
	}
	return oldValue.NextActionAt, nil
}

// ClearNextActionAt clears the value of the "next_action_at" field.
func (m *RecipientMutation) ClearNextActionAt() {
	m.next_action_at = nil
	m.clearedFields[recipient.FieldNextActionAt] = struct{}{}
}

// NextActionAtCleared returns if the "next_action_at" field was cleared in this mutation.
func (m *RecipientMutation) NextActionAtCleared() bool {
	_, ok := m.clearedFields[recipient.FieldNextActionAt]
	return ok
}

// ResetNextActionAt resets all changes to the "next_action_at" field.
func (m *RecipientMutation) ResetNextActionAt() {
	m.next_action_at = nil
	delete(m.clearedFields, recipient.FieldNextActionAt)
}

// SetMetadata sets the "metadata" field.
func (m *RecipientMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *RecipientMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Recipient entity.
// If the Recipient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipientMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *RecipientMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[recipient.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *RecipientMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[recipient.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *RecipientMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, recipient.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *RecipientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecipientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Recipient entity.
// If the Recipient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecipientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RecipientMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RecipientMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Recipient entity.
// If the Recipient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecipientMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RecipientMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RecipientMutation builder.
func (m *RecipientMutation) Where(ps ...predicate.Recipient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecipientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecipientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Recipient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecipientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecipientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Recipient).
func (m *RecipientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecipientMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.tenant_id != nil {
		fields = append(fields, recipient.FieldTenantID)
	}
	if m.campaign_id != nil {
		fields = append(fields, recipient.FieldCampaignID)
	}
	if m.lead_id != nil {
		fields = append(fields, recipient.FieldLeadID)
	}
	if m.contact_id != nil {
		fields = append(fields, recipient.FieldContactID)
	}
	if m.prospect_id != nil {
		fields = append(fields, recipient.FieldProspectID)
	}
	if m.status != nil {
		fields = append(fields, recipient.FieldStatus)
	}
	if m.current_step != nil {
		fields = append(fields, recipient.FieldCurrentStep)
	}
	if m.next_action_at != nil {
		fields = append(fields, recipient.FieldNextActionAt)
	}
	if m.metadata != nil {
		fields = append(fields, recipient.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, recipient.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, recipient.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecipientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recipient.FieldTenantID:
		return m.TenantID()
	case recipient.FieldCampaignID:
		return m.CampaignID()
	case recipient.FieldLeadID:
		return m.LeadID()
	case recipient.FieldContactID:
		return m.ContactID()
	case recipient.FieldProspectID:
		return m.ProspectID()
	case recipient.FieldStatus:
		return m.Status()
	case recipient.FieldCurrentStep:
		return m.CurrentStep()
	case recipient.FieldNextActionAt:
		return m.NextActionAt()
	case recipient.FieldMetadata:
		return m.Metadata()
	case recipient.FieldCreatedAt:
		return m.CreatedAt()
	case recipient.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecipientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recipient.FieldTenantID:
		return m.OldTenantID(ctx)
	case recipient.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case recipient.FieldLeadID:
		return m.OldLeadID(ctx)
	case recipient.FieldContactID:
		return m.OldContactID(ctx)
	case recipient.FieldProspectID:
		return m.OldProspectID(ctx)
	case recipient.FieldStatus:
		return m.OldStatus(ctx)
	case recipient.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case recipient.FieldNextActionAt:
		return m.OldNextActionAt(ctx)
	case recipient.FieldMetadata:
		return m.OldMetadata(ctx)
	case recipient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case recipient.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Recipient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecipientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recipient.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case recipient.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case recipient.FieldLeadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case recipient.FieldContactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactID(v)
		return nil
	case recipient.FieldProspectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProspectID(v)
		return nil
	case recipient.FieldStatus:
		v, ok := value.(recipient.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case recipient.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case recipient.FieldNextActionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextActionAt(v)
		return nil
	case recipient.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case recipient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case recipient.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Recipient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecipientMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_step != nil {
		fields = append(fields, recipient.FieldCurrentStep)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecipientMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recipient.FieldCurrentStep:
		return m.AddedCurrentStep()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecipientMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recipient.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStep(v)
		return nil
	}
	return fmt.Errorf("unknown Recipient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecipientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recipient.FieldLeadID) {
		fields = append(fields, recipient.FieldLeadID)
	}
	if m.FieldCleared(recipient.FieldContactID) {
		fields = append(fields, recipient.FieldContactID)
	}
	if m.FieldCleared(recipient.FieldProspectID) {
		fields = append(fields, recipient.FieldProspectID)
	}
	if m.FieldCleared(recipient.FieldNextActionAt) {
		fields = append(fields, recipient.FieldNextActionAt)
	}
	if m.FieldCleared(recipient.FieldMetadata) {
		fields = append(fields, recipient.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecipientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecipientMutation) ClearField(name string) error {
	switch name {
	case recipient.FieldLeadID:
		m.ClearLeadID()
		return nil
	case recipient.FieldContactID:
		m.ClearContactID()
		return nil
	case recipient.FieldProspectID:
		m.ClearProspectID()
		return nil
	case recipient.FieldNextActionAt:
		m.ClearNextActionAt()
		return nil
	case recipient.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Recipient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecipientMutation) ResetField(name string) error {
	switch name {
	case recipient.FieldTenantID:
		m.ResetTenantID()
		return nil
	case recipient.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case recipient.FieldLeadID:
		m.ResetLeadID()
		return nil
	case recipient.FieldContactID:
		m.ResetContactID()
		return nil
	case recipient.FieldProspectID:
		m.ResetProspectID()
		return nil
	case recipient.FieldStatus:
		m.ResetStatus()
		return nil
	case recipient.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case recipient.FieldNextActionAt:
		m.ResetNextActionAt()
		return nil
	case recipient.FieldMetadata:
		m.ResetMetadata()
		return nil
	case recipient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case recipient.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Recipient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecipientMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecipientMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecipientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecipientMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecipientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecipientMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecipientMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Recipient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecipientMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Recipient edge %s", name)
}

// TemplateMutation represents an operation that mutates the Template nodes in the graph.
type TemplateMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	channel_kind     *template.ChannelKind
	name             *string
	subject          *string
	body             *string
	use_ai           *bool
	variations       *[]map[string]string
	appendvariations []map[string]string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Template, error)
	predicates       []predicate.Template
}

var _ ent.Mutation = (*TemplateMutation)(nil)

// templateOption allows management of the mutation configuration using functional options.
type templateOption func(*TemplateMutation)

// newTemplateMutation creates new mutation for the Template entity.
func newTemplateMutation(c config, op Op, opts ...templateOption) *TemplateMutation {
	m := &TemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTemplateID sets the ID field of the mutation.
func withTemplateID(id string) templateOption {
	return func(m *TemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *Template
		)
		m.oldValue = func(ctx context.Context) (*Template, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Template.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTemplate sets the old Template of the mutation.
func withTemplate(node *Template) templateOption {
	return func(m *TemplateMutation) {
		m.oldValue = func(context.Context) (*Template, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Template entities.
func (m *TemplateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TemplateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TemplateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Template.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *TemplateMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TemplateMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TemplateMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetChannelKind sets the "channel_kind" field.
func (m *TemplateMutation) SetChannelKind(tk template.ChannelKind) {
	m.channel_kind = &tk
}

// ChannelKind returns the value of the "channel_kind" field in the mutation.
func (m *TemplateMutation) ChannelKind() (r template.ChannelKind, exists bool) {
	v := m.channel_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelKind returns the old "channel_kind" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldChannelKind(ctx context.Context) (v template.ChannelKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelKind: %w", err)
	}
	return oldValue.ChannelKind, nil
}

// ResetChannelKind resets all changes to the "channel_kind" field.
func (m *TemplateMutation) ResetChannelKind() {
	m.channel_kind = nil
}

// SetName sets the "name" field.
func (m *TemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TemplateMutation) ResetName() {
	m.name = nil
}

// SetSubject sets the "subject" field.
func (m *TemplateMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *TemplateMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldSubject(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *TemplateMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[template.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *TemplateMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[template.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *TemplateMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, template.FieldSubject)
}

// SetBody sets the "body" field.
func (m *TemplateMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *TemplateMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *TemplateMutation) ResetBody() {
	m.body = nil
}

// SetUseAi sets the "use_ai" field.
func (m *TemplateMutation) SetUseAi(b bool) {
	m.use_ai = &b
}

// UseAi returns the value of the "use_ai" field in the mutation.
func (m *TemplateMutation) UseAi() (r bool, exists bool) {
	v := m.use_ai
	if v == nil {
		return
	}
	return *v, true
}

// OldUseAi returns the old "use_ai" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldUseAi(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUseAi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUseAi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUseAi: %w", err)
	}
	return oldValue.UseAi, nil
}

// ResetUseAi resets all changes to the "use_ai" field.
func (m *TemplateMutation) ResetUseAi() {
	m.use_ai = nil
}

// SetVariations sets the "variations" field.
func (m *TemplateMutation) SetVariations(value []map[string]string) {
	m.variations = &value
	m.appendvariations = nil
}

// Variations returns the value of the "variations" field in the mutation.
func (m *TemplateMutation) Variations() (r []map[string]string, exists bool) {
	v := m.variations
	if v == nil {
		return
	}
	return *v, true
}

// OldVariations returns the old "variations" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldVariations(ctx context.Context) (v []map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariations: %w", err)
	}
	return oldValue.Variations, nil
}

// AppendVariations adds value to the "variations" field.
func (m *TemplateMutation) AppendVariations(value []map[string]string) {
	m.appendvariations = append(m.appendvariations, value...)
}

// AppendedVariations returns the list of values that were appended to the "variations" field in this mutation.
func (m *TemplateMutation) AppendedVariations() ([]map[string]string, bool) {
	if len(m.appendvariations) == 0 {
		return nil, false
	}
	return m.appendvariations, true
}

// ClearVariations clears the value of the "variations" field.
func (m *TemplateMutation) ClearVariations() {
	m.variations = nil
	m.appendvariations = nil
	m.clearedFields[template.FieldVariations] = struct{}{}
}

// VariationsCleared returns if the "variations" field was cleared in this mutation.
func (m *TemplateMutation) VariationsCleared() bool {
	_, ok := m.clearedFields[template.FieldVariations]
	return ok
}

// ResetVariations resets all changes to the "variations" field.
func (m *TemplateMutation) ResetVariations() {
	m.variations = nil
	m.appendvariations = nil
	delete(m.clearedFields, template.FieldVariations)
}

// SetCreatedAt sets the "created_at" field.
func (m *TemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TemplateMutation builder.
func (m *TemplateMutation) Where(ps ...predicate.Template) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Template, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Template).
func (m *TemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TemplateMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant_id != nil {
		fields = append(fields, template.FieldTenantID)
	}
	if m.channel_kind != nil {
		fields = append(fields, template.FieldChannelKind)
	}
	if m.name != nil {
		fields = append(fields, template.FieldName)
	}
	if m.subject != nil {
		fields = append(fields, template.FieldSubject)
	}
	if m.body != nil {
		fields = append(fields, template.FieldBody)
	}
	if m.use_ai != nil {
		fields = append(fields, template.FieldUseAi)
	}
	if m.variations != nil {
		fields = append(fields, template.FieldVariations)
	}
	if m.created_at != nil {
		fields = append(fields, template.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case template.FieldTenantID:
		return m.TenantID()
	case template.FieldChannelKind:
		return m.ChannelKind()
	case template.FieldName:
		return m.Name()
	case template.FieldSubject:
		return m.Subject()
	case template.FieldBody:
		return m.Body()
	case template.FieldUseAi:
		return m.UseAi()
	case template.FieldVariations:
		return m.Variations()
	case template.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case template.FieldTenantID:
		return m.OldTenantID(ctx)
	case template.FieldChannelKind:
		return m.OldChannelKind(ctx)
	case template.FieldName:
		return m.OldName(ctx)
	case template.FieldSubject:
		return m.OldSubject(ctx)
	case template.FieldBody:
		return m.OldBody(ctx)
	case template.FieldUseAi:
		return m.OldUseAi(ctx)
	case template.FieldVariations:
		return m.OldVariations(ctx)
	case template.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Template field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case template.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case template.FieldChannelKind:
		v, ok := value.(template.ChannelKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelKind(v)
		return nil
	case template.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case template.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case template.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case template.FieldUseAi:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUseAi(v)
		return nil
	case template.FieldVariations:
		v, ok := value.([]map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariations(v)
		return nil
	case template.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Template field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Template numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(template.FieldSubject) {
		fields = append(fields, template.FieldSubject)
	}
	if m.FieldCleared(template.FieldVariations) {
		fields = append(fields, template.FieldVariations)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TemplateMutation) ClearField(name string) error {
	switch name {
	case template.FieldSubject:
		m.ClearSubject()
		return nil
	case template.FieldVariations:
		m.ClearVariations()
		return nil
	}
	return fmt.Errorf("unknown Template nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TemplateMutation) ResetField(name string) error {
	switch name {
	case template.FieldTenantID:
		m.ResetTenantID()
		return nil
	case template.FieldChannelKind:
		m.ResetChannelKind()
		return nil
	case template.FieldName:
		m.ResetName()
		return nil
	case template.FieldSubject:
		m.ResetSubject()
		return nil
	case template.FieldBody:
		m.ResetBody()
		return nil
	case template.FieldUseAi:
		m.ResetUseAi()
		return nil
	case template.FieldVariations:
		m.ResetVariations()
		return nil
	case template.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Template field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Template unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Template edge %s", name)
}

// TenantMutation represents an operation that mutates the Tenant nodes in the graph.
type TenantMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Tenant, error)
	predicates    []predicate.Tenant
}

var _ ent.Mutation = (*TenantMutation)(nil)

// tenantOption allows management of the mutation configuration using functional options.
type tenantOption func(*TenantMutation)

// newTenantMutation creates new mutation for the Tenant entity.
func newTenantMutation(c config, op Op, opts ...tenantOption) *TenantMutation {
	m := &TenantMutation{
		config:        c,
		op:            op,
		typ:           TypeTenant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantID sets the ID field of the mutation.
func withTenantID(id string) tenantOption {
	return func(m *TenantMutation) {
		var (
			err   error
			once  sync.Once
			value *Tenant
		)
		m.oldValue = func(ctx context.Context) (*Tenant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tenant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenant sets the old Tenant of the mutation.
func withTenant(node *Tenant) tenantOption {
	return func(m *TenantMutation) {
		m.oldValue = func(context.Context) (*Tenant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tenant entities.
func (m *TenantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tenant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TenantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TenantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TenantMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TenantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TenantMutation builder.
func (m *TenantMutation) Where(ps ...predicate.Tenant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tenant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tenant).
func (m *TenantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, tenant.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, tenant.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldName:
		return m.Name()
	case tenant.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenant.FieldName:
		return m.OldName(ctx)
	case tenant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tenant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tenant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Tenant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Tenant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantMutation) ResetField(name string) error {
	switch name {
	case tenant.FieldName:
		m.ResetName()
		return nil
	case tenant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Tenant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Tenant edge %s", name)
}
