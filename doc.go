// Package retrofit computes the derived metrics of a real-estate retrofit
// dashboard. It turns raw portfolio inputs into the figures that KPI cards
// and charts display.
//
// The core functionalities include:
//   - Formatting: amounts in thousands ("£420k", "-£800k") and ratios as
//     percentages ("43%"), with a "—" placeholder for undefined values.
//   - Metric aggregation: EPC band shares, compliance tiers built from
//     configurable tier rules, and data confidence shares.
//   - Series building: validated cashflow projections with cumulative
//     positions, and before/after operating expense comparisons.
//
// Every function is a pure transformation of immutable inputs: calling it
// twice with the same input yields equal output. Invalid inputs are reported
// as *ValidationError; degenerate inputs (a total of zero) produce zero
// values flagged Empty rather than NaN.
//
// The chart package adapts these results to a chart rendering collaborator,
// and the renderer package renders them as markdown.
package retrofit
