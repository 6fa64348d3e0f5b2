// Package report counts test outcomes per item and renders them: as a styled summary line for
// terminals and as Prometheus text exposition for scraping or pushing.
package report
