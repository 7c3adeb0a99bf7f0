package profile

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/quantfold/fmp-mcp/internal/curate"
	"github.com/quantfold/fmp-mcp/internal/tools"
)

const toolName = "get-company-profile"

// descriptionMaxLen bounds the free-text business description.
const descriptionMaxLen = 300

var profilePolicy = curate.Policy{Fields: []curate.Field{
	{Name: "symbol"},
	{Name: "companyName"},
	{Name: "price"},
	{Name: "marketCap", Keys: []string{"marketCap", "mktCap"}},
	{Name: "beta"},
	{Name: "exchange", Keys: []string{"exchangeShortName", "exchange"}},
	{Name: "sector"},
	{Name: "industry"},
	{Name: "country"},
	{Name: "currency"},
	{Name: "ceo"},
	{Name: "fullTimeEmployees"},
	{Name: "ipoDate"},
	{Name: "website"},
	{Name: "description", MaxLen: descriptionMaxLen},
}}

// Handler returns the tool handler function for get-company-profile
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetCompanyProfile(ctx, request, deps)
	}
}

func handleGetCompanyProfile(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if err := deps.Validate(); err != nil {
		slog.Error(err.Error())
		return mcp.NewToolResultError(err.Error()), nil
	}
	deps.EmitToolEvent(toolName)

	var args Input
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	symbol := tools.NormalizeSymbol(args.Symbol)
	if symbol == "" {
		errMessage := "symbol parameter is required"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	slog.Info("fetching company profile", "symbol", symbol)

	raw, err := deps.FMPService.Fetch(ctx, "/profile/"+url.PathEscape(symbol), nil)
	if err != nil {
		return tools.ProviderFailureResult(toolName, err)
	}

	records := curate.Normalize(raw, "")
	if records.Empty() {
		return tools.NoDataResult("company profile", symbol)
	}

	return tools.JSONResult(curate.Project(records.Records[0], profilePolicy))
}
