// Package chart is the chart configuration and label-resolution engine.
//
// It turns a series configuration into theme-scoped CSS custom properties
// (GenerateThemeStyles) and resolves which series descriptor labels a data
// point emitted by the charting backend (ResolveConfigEntry). Tooltip and
// legend assembly compose the two into display records that renderers turn
// into markup.
//
// The active configuration travels explicitly in a Container created by
// Provide. Every entrypoint on a Container checks it first and fails with
// ErrNoConfig when no configuration is present.
package chart
