package e2e

import (
	"github.com/cucumber/godog"

	"doccheck/e2e/steps/checklist"
	"doccheck/e2e/steps/common"
)

// RegisterSteps registers all step definitions from modular packages.
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Server lifecycle, raw requests, status assertions.
	common.RegisterSteps(ctx, tc)

	// Checklist content assertions.
	checklist.RegisterSteps(ctx, tc)
}
