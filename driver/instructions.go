package driver

import "fmt"

// masterInstruction templates the master-image request text: the literal
// prompt plus the fixed directive to preserve the reference face.
func masterInstruction(promptText string) string {
	return fmt.Sprintf(`Fashion photography of [the person in the reference image].
%s
CRITICAL: Maintain the facial identity of the reference image exactly.`, promptText)
}

// poseInstruction templates a pose-variant request: keep character, clothing
// and background of the attached image, change only the pose.
func poseInstruction(pose string) string {
	return fmt.Sprintf(`TASK: Create a variation of the [ATTACHED IMAGE].

INSTRUCTIONS:
1. Keep the exact character (face, hair, clothes) from the [ATTACHED IMAGE].
2. Keep the exact background environment from the [ATTACHED IMAGE].
3. CHANGE ONLY THE POSE to: %s.`, pose)
}
