// Package web is the HTTP layer of the portal: the request context, the page
// handlers and the route table with its guards.
package web
