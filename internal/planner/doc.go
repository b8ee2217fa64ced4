// Package planner implements the scaffolding strategies.
//
// Each strategy is built on the idempotent primitives of fsops.Creator and
// reports exactly which paths it touched and whether they were new, so the
// engine can record a change set that contains only paths created by the
// current run.
//
// Strategies:
//   - Module structure: modules/<name>/{examples,<name>}/ plus README.md and
//     the Terraform files of the module
//   - Live matrix: <env>/<live>/ for every environment and live name, with a
//     placeholder main.tf in directories that did not exist before
//   - Empty-directory fill: a placeholder in every empty directory of a tree
package planner
