package analytics

import (
	"context"
	"fmt"
	"os"
	"time"

	"newsrank/client"
	"newsrank/database"
	"newsrank/helpers"

	influxdb2 "github.com/influxdata/influxdb-client-go"
)

// Tracker gathers read statistics (article visits) in the analytics cache.
// All operations are no-ops unless USE_ANALYTICS is switched on, so the
// controllers never need to check
type Tracker struct {
	influxClient influxdb2.Client
	VisitorAPI   database.InfluxAPI
	Requests     *client.Registry
}

// SetConnections initializes the instance
func (t *Tracker) SetConnections(influxClient *influxdb2.Client) {
	t.influxClient = *influxClient
	t.VisitorAPI = database.InfluxAPI{
		WriteAPI:  t.influxClient.WriteAPIBlocking(os.Getenv("ANALYTICS_ORG"), os.Getenv("ANALYTICS_VISITORS_BUCKET")),
		QueryAPI:  t.influxClient.QueryAPI(os.Getenv("ANALYTICS_ORG")),
		DeleteAPI: t.influxClient.DeleteAPI(),
	}
}

// SaveVisitor stores event data in the analytics cache
func (t *Tracker) SaveVisitor(domain string, articleID string, clientIP string) {

	if os.Getenv("USE_ANALYTICS") != "YES" {
		return
	}

	// page refreshes are not counted as new visits
	if t.Requests != nil && !t.Requests.Continue(clientIP, articleID) {
		return
	}

	// include the object type (domain) in the tag,
	// so this information can be "wrapped" in aggregation queries
	p := influxdb2.NewPoint(
		"visit",
		map[string]string{"articleId": domain + "_" + articleID},
		map[string]interface{}{"client": clientIP},
		time.Now())

	err := t.VisitorAPI.WriteAPI.WritePoint(context.Background(), p)
	if err != nil {
		// tracking must never fail the read path
		fmt.Println(err)
	}
}

// GetVisits counts the number of visits of an article.
// The value is "live" - read from the analytics cache, whose bucket is
// set to a maximum retention period
func (t *Tracker) GetVisits(domain string, articleID string, startDT time.Time) (int64, error) {

	if os.Getenv("USE_ANALYTICS") != "YES" {
		return -1, nil
	}

	flux := `from(bucket: "%s")
		|> range(start: %s)
		|> filter(fn: (r) => r["_measurement"] == "visit" and r["articleId"] == "%s")
		|> count()
		|> yield(name: "count")`

	id := domain + "_" + articleID
	flux = fmt.Sprintf(
		flux,
		os.Getenv("ANALYTICS_VISITORS_BUCKET"),
		startDT.Format(time.RFC3339),
		id)

	result, err := t.VisitorAPI.QueryAPI.Query(context.Background(), flux)
	if err != nil {
		return 0, helpers.WrapError(err, helpers.FuncName())
	}

	// single record expected
	var res interface{}
	for result.Next() {
		res = result.Record().Value()
	}

	var cnt int64 = 0
	if res != nil {
		cnt = res.(int64)
	}

	return cnt, nil
}
