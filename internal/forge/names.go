/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package forge

// Well known wizard commands exposed by the fabric8 command service.
const (
	CommandNewQuickstart       = "obsidian-new-quickstart"
	CommandConfigureGitAccount = "fabric8-configure-git-account"
)

// Pipelines offered by the quickstart wizard.
const (
	PipelineCanaryReleaseAndStage = "Canary Release and Stage"
	PipelineReleaseAndStage       = "Release and Stage"
	PipelineRelease               = "Release"
)

// Pipelines lists every pipeline the quickstart wizard offers.
var Pipelines = []string{
	PipelineCanaryReleaseAndStage,
	PipelineReleaseAndStage,
	PipelineRelease,
}
