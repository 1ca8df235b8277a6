// Package http implements the REST API of the budget service.
//
// It wires chi routes for signup, login, users and budgets, decodes JSON
// request bodies, and maps service and store errors onto status codes with a
// {"status","description"} body. Request tracing, access logging, CORS and
// panic recovery run as middleware before requests reach the service layer.
package http
