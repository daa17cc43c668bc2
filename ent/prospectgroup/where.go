// Code generated by ent, DO NOT EDIT.

package prospectgroup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/outflowhq/outflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEQ(FieldTenantID, v))
}

// ChannelConfigID applies equality check predicate on the "channel_config_id" field. It's identical to ChannelConfigIDEQ.
func ChannelConfigID(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEQ(FieldChannelConfigID, v))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEQ(FieldExternalID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEQ(FieldName, v))
}

// MemberCount applies equality check predicate on the "member_count" field. It's identical to MemberCountEQ.
func MemberCount(v int) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEQ(FieldMemberCount, v))
}

// ImportedAt applies equality check predicate on the "imported_at" field. It's identical to ImportedAtEQ.
func ImportedAt(v time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEQ(FieldImportedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldContainsFold(FieldTenantID, v))
}

// ChannelConfigIDEQ applies the EQ predicate on the "channel_config_id" field.
func ChannelConfigIDEQ(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEQ(FieldChannelConfigID, v))
}

// ChannelConfigIDNEQ applies the NEQ predicate on the "channel_config_id" field.
func ChannelConfigIDNEQ(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldNEQ(FieldChannelConfigID, v))
}

// ChannelConfigIDIn applies the In predicate on the "channel_config_id" field.
func ChannelConfigIDIn(vs ...string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldIn(FieldChannelConfigID, vs...))
}

// ChannelConfigIDNotIn applies the NotIn predicate on the "channel_config_id" field.
func ChannelConfigIDNotIn(vs ...string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldNotIn(FieldChannelConfigID, vs...))
}

// ChannelConfigIDGT applies the GT predicate on the "channel_config_id" field.
func ChannelConfigIDGT(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldGT(FieldChannelConfigID, v))
}

// ChannelConfigIDGTE applies the GTE predicate on the "channel_config_id" field.
func ChannelConfigIDGTE(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldGTE(FieldChannelConfigID, v))
}

// ChannelConfigIDLT applies the LT predicate on the "channel_config_id" field.
func ChannelConfigIDLT(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldLT(FieldChannelConfigID, v))
}

// ChannelConfigIDLTE applies the LTE predicate on the "channel_config_id" field.
func ChannelConfigIDLTE(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldLTE(FieldChannelConfigID, v))
}

// ChannelConfigIDContains applies the Contains predicate on the "channel_config_id" field.
func ChannelConfigIDContains(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldContains(FieldChannelConfigID, v))
}

// ChannelConfigIDHasPrefix applies the HasPrefix predicate on the "channel_config_id" field.
func ChannelConfigIDHasPrefix(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldHasPrefix(FieldChannelConfigID, v))
}

// ChannelConfigIDHasSuffix applies the HasSuffix predicate on the "channel_config_id" field.
func ChannelConfigIDHasSuffix(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldHasSuffix(FieldChannelConfigID, v))
}

// ChannelConfigIDEqualFold applies the EqualFold predicate on the "channel_config_id" field.
func ChannelConfigIDEqualFold(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEqualFold(FieldChannelConfigID, v))
}

// ChannelConfigIDContainsFold applies the ContainsFold predicate on the "channel_config_id" field.
func ChannelConfigIDContainsFold(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldContainsFold(FieldChannelConfigID, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldContainsFold(FieldExternalID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldContainsFold(FieldName, v))
}

// MemberCountEQ applies the EQ predicate on the "member_count" field.
func MemberCountEQ(v int) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEQ(FieldMemberCount, v))
}

// MemberCountNEQ applies the NEQ predicate on the "member_count" field.
func MemberCountNEQ(v int) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldNEQ(FieldMemberCount, v))
}

// MemberCountIn applies the In predicate on the "member_count" field.
func MemberCountIn(vs ...int) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldIn(FieldMemberCount, vs...))
}

// MemberCountNotIn applies the NotIn predicate on the "member_count" field.
func MemberCountNotIn(vs ...int) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldNotIn(FieldMemberCount, vs...))
}

// MemberCountGT applies the GT predicate on the "member_count" field.
func MemberCountGT(v int) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldGT(FieldMemberCount, v))
}

// MemberCountGTE applies the GTE predicate on the "member_count" field.
func MemberCountGTE(v int) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldGTE(FieldMemberCount, v))
}

// MemberCountLT applies the LT predicate on the "member_count" field.
func MemberCountLT(v int) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldLT(FieldMemberCount, v))
}

// MemberCountLTE applies the LTE predicate on the "member_count" field.
func MemberCountLTE(v int) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldLTE(FieldMemberCount, v))
}

// ImportedAtEQ applies the EQ predicate on the "imported_at" field.
func ImportedAtEQ(v time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEQ(FieldImportedAt, v))
}

// ImportedAtNEQ applies the NEQ predicate on the "imported_at" field.
func ImportedAtNEQ(v time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldNEQ(FieldImportedAt, v))
}

// ImportedAtIn applies the In predicate on the "imported_at" field.
func ImportedAtIn(vs ...time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldIn(FieldImportedAt, vs...))
}

// ImportedAtNotIn applies the NotIn predicate on the "imported_at" field.
func ImportedAtNotIn(vs ...time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldNotIn(FieldImportedAt, vs...))
}

// ImportedAtGT applies the GT predicate on the "imported_at" field.
func ImportedAtGT(v time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldGT(FieldImportedAt, v))
}

// ImportedAtGTE applies the GTE predicate on the "imported_at" field.
func ImportedAtGTE(v time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldGTE(FieldImportedAt, v))
}

// ImportedAtLT applies the LT predicate on the "imported_at" field.
func ImportedAtLT(v time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldLT(FieldImportedAt, v))
}

// ImportedAtLTE applies the LTE predicate on the "imported_at" field.
func ImportedAtLTE(v time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldLTE(FieldImportedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProspectGroup) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProspectGroup) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProspectGroup) predicate.ProspectGroup {
	return predicate.ProspectGroup(sql.NotPredicates(p))
}
