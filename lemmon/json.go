package lemmon

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"

	"github.com/jafaripur/avicenna-logic-system/logicerr"
	"github.com/jafaripur/avicenna-logic-system/parser"
	"github.com/jafaripur/avicenna-logic-system/proof"
	"github.com/jafaripur/avicenna-logic-system/rules"
)

// proofSchema is the JSON Schema a proof submission must satisfy, mirroring
// the shape of LineJSON below. schemaVersion is optional and, when present,
// is checked with the "semver" custom format rather than a plain string
// pattern.
const proofSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["lines"],
  "properties": {
    "schemaVersion": {"type": "string", "format": "semver"},
    "lines": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["line", "formula"],
        "properties": {
          "assumptions": {"type": "array", "items": {"type": "integer"}},
          "line": {"type": "integer", "minimum": 1},
          "formula": {"type": "string", "minLength": 1},
          "citedRefs": {"type": "array", "items": {"type": "integer"}},
          "rule": {"type": "string"}
        }
      }
    }
  }
}`

// LineJSON is one element of a JSON proof submission's "lines" array — the
// structured equivalent of a single textual Lemmon line.
type LineJSON struct {
	Assumptions []int  `json:"assumptions"`
	Line        int    `json:"line"`
	Formula     string `json:"formula"`
	CitedRefs   []int  `json:"citedRefs"`
	Rule        string `json:"rule"`
}

// Submission is the top-level JSON proof-submission document.
type Submission struct {
	SchemaVersion string     `json:"schemaVersion"`
	Lines         []LineJSON `json:"lines"`
}

var proofValidator = compileProofSchema()

func compileProofSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true
	if compiler.Formats == nil {
		compiler.Formats = make(map[string]func(interface{}) bool)
	}
	compiler.Formats["semver"] = validSemver

	const url = "schema://lemmon-proof.json"
	if err := compiler.AddResource(url, strings.NewReader(proofSchema)); err != nil {
		panic(fmt.Sprintf("lemmon: invalid embedded proof schema: %v", err))
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("lemmon: failed to compile embedded proof schema: %v", err))
	}
	return schema
}

// validSemver accepts semver strings with or without the leading "v"
// semver.IsValid requires.
func validSemver(v interface{}) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	if !strings.HasPrefix(s, "v") {
		s = "v" + s
	}
	return semver.IsValid(s)
}

// ParseJSON is the structured-input counterpart to Parse: it validates raw
// against the embedded proof schema, converts each LineJSON into a
// proof.Line, and runs the same rule detector Parse does before returning.
func ParseJSON(raw []byte) ([]proof.Line, error) {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, logicerr.New(logicerr.LemmonParseError,
			fmt.Sprintf("invalid JSON: %v", err), logicerr.Position{}, string(raw))
	}
	if err := proofValidator.Validate(doc); err != nil {
		return nil, logicerr.New(logicerr.LemmonParseError,
			fmt.Sprintf("proof submission failed schema validation: %v", err), logicerr.Position{}, string(raw))
	}

	var sub Submission
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, logicerr.New(logicerr.LemmonParseError,
			fmt.Sprintf("invalid JSON: %v", err), logicerr.Position{}, string(raw))
	}

	lines := make([]proof.Line, len(sub.Lines))
	for i, lj := range sub.Lines {
		expr, err := parser.Parse(lj.Formula)
		if err != nil {
			return nil, err
		}
		expr = canonicalizeVars(expr)

		line := proof.Line{
			LineNumber:  lj.Line,
			Assumptions: lj.Assumptions,
			Formula:     lj.Formula,
			AST:         expr,
			CitedRefs:   lj.CitedRefs,
			UserRule:    strings.TrimSpace(lj.Rule),
		}

		selfDependency := len(lj.Assumptions) == 1 && lj.Assumptions[0] == lj.Line
		if selfDependency && line.UserRule != "" && len(lj.CitedRefs) == 0 {
			if strings.EqualFold(line.UserRule, "Premise") {
				line.AutoType = proof.Premise
			} else {
				line.AutoType = proof.Assume
			}
			line.CitedRefs = []int{lj.Line}
		}
		lines[i] = line
	}

	for i, l := range lines {
		if l.IsSelfJustifying() {
			continue
		}
		if code, ok := rules.Detect(l, lines); ok {
			lines[i].DetectedRule = code
		}
	}
	return lines, nil
}
