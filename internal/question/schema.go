package question

// bankSchema validates the question bank file before any question is
// indexed. Malformed banks fail at load, not mid-session.
const bankSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "questions"],
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "display_code", "prompt", "options", "correct_index", "exam_type"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "display_code": {"type": "string", "pattern": "^[TGE][0-9][A-Z][0-9]{2}$"},
          "prompt": {"type": "string", "minLength": 1},
          "options": {
            "type": "array",
            "minItems": 4,
            "maxItems": 4,
            "items": {"type": "string", "minLength": 1}
          },
          "correct_index": {"type": "integer", "minimum": 0, "maximum": 3},
          "exam_type": {"enum": ["technician", "general", "extra"]}
        }
      }
    }
  }
}`
