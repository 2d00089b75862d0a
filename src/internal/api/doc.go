// Package api provides the HTTP interface of the reference API.
//
// It exposes CRUD endpoints for example records backed by a
// domain.RecordStore, plus liveness and readiness probes:
//
//	GET    /api/example        list all records
//	POST   /api/example        create a record (201 + Location)
//	GET    /api/example/{id}   fetch one record
//	PUT    /api/example/{id}   replace a record's fields
//	DELETE /api/example/{id}   remove a record (204)
//	GET    /health/live        liveness probe
//	GET    /health/ready       readiness probe
//
// # Response Format
//
// Successful responses carry the bare record or record array. A missing
// record yields 404 with an empty body. Malformed requests use the error
// envelope:
//
//	{
//	  "error": {
//	    "code": "invalid_request",
//	    "message": "Human-readable error message"
//	  }
//	}
package api
