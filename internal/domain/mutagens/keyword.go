package mutagens

// RemoveReturn strips the return keyword, leaving its expression as a bare statement.
var RemoveReturn = deleteAll("remove-return", "delete every 'return' keyword", `\breturn\s+`)

// RemoveFunctionName drops the identifier of named function declarations and expressions.
var RemoveFunctionName = replaceAll(
	"remove-function-name",
	"'function name(' -> 'function ('",
	`\bfunction\s+[A-Za-z_$][\w$]*\s*\(`,
	"function (",
)
