// ABOUTME: MCP tool implementations for parsing and committed records.
// ABOUTME: parse_preview is read-only; import_file parses and commits.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/pulse/internal/ingest"
	"github.com/harperreed/pulse/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// parse_preview
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "parse_preview",
		Description: "Parse CSV export text and report what it contains, without committing anything",
	}, s.handleParsePreview)

	// import_file
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "import_file",
		Description: "Parse CSV export text and commit the resulting records to the store",
	}, s.handleImportFile)

	// list_records
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_records",
		Description: "List committed records, optionally filtered by category",
	}, s.handleListRecords)

	// delete_record
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_record",
		Description: "Delete a committed record by ID or ID prefix",
	}, s.handleDeleteRecord)

	// dataset_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "dataset_summary",
		Description: "Count committed records per category",
	}, s.handleDatasetSummary)
}

// Tool input/output types

type parseInput struct {
	Name string `json:"name,omitempty" jsonschema:"description=Label for the file (shown in results)"`
	Text string `json:"text" jsonschema:"description=Raw CSV export text,required"`
}

type parseOutput struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	Records       int    `json:"records"`
	RowsProcessed int    `json:"rows_processed"`
	RowsSkipped   int    `json:"rows_skipped"`
	Committed     int    `json:"committed,omitempty"`
	Message       string `json:"message"`
}

type listRecordsInput struct {
	Category string `json:"category,omitempty" jsonschema:"description=Filter by category (recovery, sleep, workout, daily, journal, strength)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"description=Max results (default 20)"`
}

type deleteRecordInput struct {
	ID string `json:"id" jsonschema:"description=Record ID or prefix,required"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleParsePreview(ctx context.Context, req *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result := ingest.ParseFile(input.Name, input.Text, s.resolver)
	if !result.OK() {
		return nil, parseOutput{}, fmt.Errorf("parse failed: %s", result.Error)
	}

	n := result.Records.Len()
	return nil, parseOutput{
		Name:          result.Name,
		Category:      string(result.Category),
		Records:       n,
		RowsProcessed: result.RowsProcessed,
		RowsSkipped:   result.RowsSkipped,
		Message:       fmt.Sprintf("Parsed %d %s records (%d rows, %d skipped)", n, result.Category, result.RowsProcessed, result.RowsSkipped),
	}, nil
}

func (s *Server) handleImportFile(ctx context.Context, req *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result := ingest.ParseFile(input.Name, input.Text, s.resolver)
	if !result.OK() {
		return nil, parseOutput{}, fmt.Errorf("parse failed: %s", result.Error)
	}

	ds := ingest.Consolidate([]*ingest.ParsedFile{result})
	committed, err := s.repo.CommitSet(&ds.RecordSet, input.Name)
	if err != nil {
		return nil, parseOutput{}, fmt.Errorf("failed to commit records: %w", err)
	}

	return nil, parseOutput{
		Name:          result.Name,
		Category:      string(result.Category),
		Records:       result.Records.Len(),
		RowsProcessed: result.RowsProcessed,
		RowsSkipped:   result.RowsSkipped,
		Committed:     committed,
		Message:       fmt.Sprintf("Committed %d %s records", committed, result.Category),
	}, nil
}

func (s *Server) handleListRecords(ctx context.Context, req *mcp.CallToolRequest, input listRecordsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var category *models.Category
	if input.Category != "" {
		if !models.IsValidCategory(input.Category) {
			return nil, nil, fmt.Errorf("unknown category: %s", input.Category)
		}
		c := models.Category(input.Category)
		category = &c
	}

	records, err := s.repo.ListRecords(category, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list records: %w", err)
	}

	if len(records) == 0 {
		return nil, map[string]interface{}{"message": "No records found."}, nil
	}

	return nil, records, nil
}

func (s *Server) handleDeleteRecord(ctx context.Context, req *mcp.CallToolRequest, input deleteRecordInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteRecord(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete record: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted record: %s", input.ID),
	}, nil
}

func (s *Server) handleDatasetSummary(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	counts, err := s.repo.CountByCategory()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count records: %w", err)
	}

	out := make(map[string]int, len(counts))
	total := 0
	for c, n := range counts {
		out[string(c)] = n
		total += n
	}
	return nil, map[string]interface{}{
		"total":      total,
		"categories": out,
	}, nil
}
