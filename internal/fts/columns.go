// Package fts holds the data dictionary of the Financial Transparency System
// exports: the source-header→column mapping, the per-header cleaning types,
// and the destination table definition.
//
// The dictionary is static. The published spreadsheets have carried the same
// 38 recognised headers for years, including two long-standing quirks kept
// byte-exact here: the doubled space in "Commitment  total amount (EUR)
// (A+B)" and the trailing asterisk in "Type of contract*". Headers outside
// the dictionary are dropped; headers missing from a given year's file are
// skipped. Nothing here adapts to unseen headers.
package fts

// TableName is the destination table for all years.
const TableName = "fts_data"

// ColumnMapping translates source spreadsheet headers to destination column
// names, keyed by the exact header text as published.
var ColumnMapping = map[string]string{
	"Year": "year",
	"Budget": "budget",
	"Reference of the Legal Commitment (LC)": "reference_legal_commitment",
	"Reference (Budget)":                     "reference_budget",
	"Name of beneficiary":                    "beneficiary_name",
	"VAT number of beneficiary":              "beneficiary_vat",
	"Not-for-profit organisation (NFPO)":     "not_for_profit",
	"Non-governmental organisation (NGO)":    "non_governmental",
	"Coordinator":                            "coordinator",
	"Address":                                "address",
	"City":                                   "city",
	"Postal code":                            "postal_code",
	"Beneficiary country":                    "beneficiary_country",
	"NUTS2":                                  "nuts2",
	"Geographical Zone":                      "geographical_zone",
	"Action location":                        "action_location",
	"Beneficiary's contracted amount (EUR)":  "beneficiary_contracted_amount",
	"Beneficiary's estimated contracted amount (EUR)": "beneficiary_estimated_contracted_amount",
	"Beneficiary's estimated consumed amount (EUR)":   "beneficiary_estimated_consumed_amount",
	"Commitment contracted amount (EUR) (A)":          "commitment_contracted_amount",
	"Additional/Reduced amount (EUR) (B)":             "additional_reduced_amount",
	"Commitment  total amount (EUR) (A+B)":            "commitment_total_amount",
	"Commitment consumed amount (EUR)":                "commitment_consumed_amount",
	"Source of (estimated) detailed amount":           "source_estimated_detailed_amount",
	"Expense type":                                    "expense_type",
	"Subject of grant or contract":                    "subject_grant_contract",
	"Responsible department":                          "responsible_department",
	"Budget line number":                              "budget_line_number",
	"Budget line name":                                "budget_line_name",
	"Programme name":                                  "programme_name",
	"Funding type":                                    "funding_type",
	"Beneficiary Group Code":                          "beneficiary_group_code",
	"Beneficiary type":                                "beneficiary_type",
	"Project start date":                              "project_start_date",
	"Project end date":                                "project_end_date",
	"Type of contract*":                               "type_of_contract",
	"Management type":                                 "management_type",
	"Benefiting country":                              "benefiting_country",
}

// ColumnTypes assigns a cleaning type to the headers that need one. Headers
// absent from this table are opaque text.
var ColumnTypes = map[string]string{
	"Not-for-profit organisation (NFPO)":  "boolean",
	"Non-governmental organisation (NGO)": "boolean",
	"Coordinator":                         "boolean",
	"Project start date":                  "date",
	"Project end date":                    "date",
	"Beneficiary's contracted amount (EUR)":           "numeric",
	"Beneficiary's estimated contracted amount (EUR)": "numeric",
	"Beneficiary's estimated consumed amount (EUR)":   "numeric",
	"Commitment contracted amount (EUR) (A)":          "numeric",
	"Additional/Reduced amount (EUR) (B)":             "numeric",
	"Commitment  total amount (EUR) (A+B)":            "numeric",
	"Commitment consumed amount (EUR)":                "numeric",
}
