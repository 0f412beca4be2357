// internal/store/schema.go
package store

// JSON Schemas applied to data files at load time. A document that fails
// its schema degrades to the empty form instead of aborting the request.

const profileDocumentSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "gender", "nakshatraId"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "serialNumber": {"type": "string"},
      "name": {"type": "string"},
      "gender": {"type": "string", "enum": ["Male", "Female"]},
      "nakshatraId": {"type": "integer", "minimum": 1, "maximum": 36},
      "rasiLagnam": {"type": "string"},
      "gothram": {"type": "string"},
      "birthDate": {"type": "string"},
      "region": {"type": "string"},
      "qualification": {"type": "string"},
      "monthlyIncome": {"type": "number", "minimum": 0},
      "isRemarried": {"type": "boolean"}
    }
  }
}`

const tableDocumentSchema = `{
  "type": "object",
  "required": ["rows"],
  "properties": {
    "name": {"type": "string"},
    "rows": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["sourceNakshatraId", "matching"],
        "properties": {
          "sourceNakshatraId": {"type": "integer", "minimum": 1, "maximum": 36},
          "matching": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["targetNakshatraId", "value"],
              "properties": {
                "targetNakshatraId": {"type": "integer", "minimum": 1, "maximum": 36},
                "value": {"type": "integer", "minimum": 0}
              }
            }
          }
        }
      }
    }
  }
}`
