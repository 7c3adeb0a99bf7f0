package estimates

import (
	"context"
	"log/slog"
	"net/url"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/quantfold/fmp-mcp/internal/curate"
	"github.com/quantfold/fmp-mcp/internal/tools"
)

const toolName = "get-analyst-estimates"

const (
	defaultPeriod = "quarter"
	summaryCount  = 4
	fullCount     = 8
)

var estimatePolicy = curate.Policy{Fields: []curate.Field{
	{Name: "date"},
	{Name: "estimatedRevenueAvg"},
	{Name: "estimatedRevenueLow"},
	{Name: "estimatedRevenueHigh"},
	{Name: "estimatedEpsAvg"},
	{Name: "estimatedEpsLow"},
	{Name: "estimatedEpsHigh"},
	{Name: "estimatedNetIncomeAvg"},
	{Name: "numberAnalystsEstimatedEps", Keys: []string{"numberAnalystsEstimatedEps", "numberAnalystEstimatedRevenue"}},
}}

var priceTargetPolicy = curate.Policy{Fields: []curate.Field{
	{Name: "lastMonth"},
	{Name: "lastMonthAvgPriceTarget"},
	{Name: "lastQuarter"},
	{Name: "lastQuarterAvgPriceTarget"},
	{Name: "lastYear"},
	{Name: "lastYearAvgPriceTarget"},
	{Name: "allTime"},
	{Name: "allTimeAvgPriceTarget"},
	{Name: "publishers"},
}}

// payload merges the two independently curated sub-sections. A sub-section
// that failed or came back empty is omitted rather than failing the call.
type payload struct {
	Symbol      string           `json:"symbol"`
	Estimates   *curate.Envelope `json:"analystEstimates,omitempty"`
	PriceTarget curate.Record    `json:"priceTargetSummary,omitempty"`
}

// Handler returns the tool handler function for get-analyst-estimates
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetAnalystEstimates(ctx, request, deps)
	}
}

func handleGetAnalystEstimates(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
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
	period := args.Period
	if period == "" {
		period = defaultPeriod
	}
	detail := curate.ParseDetail(args.Detail)

	slog.Info("fetching analyst estimates", "symbol", symbol, "period", period, "detail", detail)

	// The two sub-sources have no ordering dependency; fetch them
	// concurrently and let each fail independently.
	var (
		wg                       sync.WaitGroup
		rawEstimates, rawTargets any
		estErr, targetErr        error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		rawEstimates, estErr = deps.FMPService.Fetch(ctx,
			"/analyst-estimates/"+url.PathEscape(symbol),
			map[string]string{"period": period})
	}()
	go func() {
		defer wg.Done()
		rawTargets, targetErr = deps.FMPService.Fetch(ctx,
			"/price-target-summary/"+url.PathEscape(symbol), nil)
	}()
	wg.Wait()

	out := payload{Symbol: symbol}

	if estErr != nil {
		slog.Error("analyst estimates sub-fetch failed", "symbol", symbol, "error", estErr)
	} else if rows := curate.Normalize(rawEstimates, ""); !rows.Empty() {
		env := curate.CapCollection(rows, detail, summaryCount, fullCount, estimatePolicy)
		out.Estimates = &env
	}

	if targetErr != nil {
		slog.Error("price target sub-fetch failed", "symbol", symbol, "error", targetErr)
	} else if targets := curate.Normalize(rawTargets, ""); !targets.Empty() {
		out.PriceTarget = curate.Project(targets.Records[0], priceTargetPolicy)
	}

	if out.Estimates == nil && len(out.PriceTarget) == 0 {
		return tools.NoDataResult("analyst coverage", symbol)
	}
	return tools.JSONResult(out)
}
