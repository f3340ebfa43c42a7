package fts

import "github.com/DataFrosch/scraper-fts/internal/ddl"

// tableColumns is the destination schema in declaration order: the surrogate
// id first, then the 38 mapped columns. Kinds are logical; each storage
// backend maps them to its own column types.
var tableColumns = []ddl.ColumnDef{
	{Name: "id", Kind: "id"},
	{Name: "year", Kind: "int"},
	{Name: "budget", Kind: "text"},
	{Name: "reference_legal_commitment", Kind: "text"},
	{Name: "reference_budget", Kind: "text"},
	{Name: "beneficiary_name", Kind: "text"},
	{Name: "beneficiary_vat", Kind: "text"},
	{Name: "not_for_profit", Kind: "bool"},
	{Name: "non_governmental", Kind: "bool"},
	{Name: "coordinator", Kind: "bool"},
	{Name: "address", Kind: "text"},
	{Name: "city", Kind: "text"},
	{Name: "postal_code", Kind: "text"},
	{Name: "beneficiary_country", Kind: "text"},
	{Name: "nuts2", Kind: "text"},
	{Name: "geographical_zone", Kind: "text"},
	{Name: "action_location", Kind: "text"},
	{Name: "beneficiary_contracted_amount", Kind: "numeric"},
	{Name: "beneficiary_estimated_contracted_amount", Kind: "numeric"},
	{Name: "beneficiary_estimated_consumed_amount", Kind: "numeric"},
	{Name: "commitment_contracted_amount", Kind: "numeric"},
	{Name: "additional_reduced_amount", Kind: "numeric"},
	{Name: "commitment_total_amount", Kind: "numeric"},
	{Name: "commitment_consumed_amount", Kind: "numeric"},
	{Name: "source_estimated_detailed_amount", Kind: "text"},
	{Name: "expense_type", Kind: "text"},
	{Name: "subject_grant_contract", Kind: "text"},
	{Name: "responsible_department", Kind: "text"},
	{Name: "budget_line_number", Kind: "text"},
	{Name: "budget_line_name", Kind: "text"},
	{Name: "programme_name", Kind: "text"},
	{Name: "funding_type", Kind: "text"},
	{Name: "beneficiary_group_code", Kind: "text"},
	{Name: "beneficiary_type", Kind: "text"},
	{Name: "project_start_date", Kind: "date"},
	{Name: "project_end_date", Kind: "date"},
	{Name: "type_of_contract", Kind: "text"},
	{Name: "management_type", Kind: "text"},
	{Name: "benefiting_country", Kind: "text"},
}

// Table returns the destination table definition. The column slice is copied
// so callers cannot mutate the dictionary.
func Table() ddl.TableDef {
	cols := make([]ddl.ColumnDef, len(tableColumns))
	copy(cols, tableColumns)
	return ddl.TableDef{Name: TableName, Columns: cols}
}
