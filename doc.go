/*
Package chillmcp is an executable MCP server that gives AI agents structured
excuses to chill.

The server tracks two bounded counters over a single shared state record: a
Stress Level (0-100) that climbs passively by one point per idle minute and
drops when the agent takes a break, and a Boss Alert Level (0-5) that rises
probabilistically whenever a break is noticed and cools down by one level per
configured cooldown period. While the Boss Alert Level sits at its maximum,
every break response is held back for twenty seconds before returning.

Eight break tools are exposed over MCP (stdio or SSE transport), each with its
own flavor text and stress-relief span, plus a read-only status query. The
response of every break contains three contract lines external validators
parse:

	Break Summary: <activity description>
	Stress Level: <0-100>
	Boss Alert Level: <0-5>

# Usage

	engine, err := chillmcp.New(
		chillmcp.WithBossAlertness(80),
		chillmcp.WithCooldown(2*time.Minute),
	)
	if err != nil {
		log.Fatal(err)
	}
	srv := mcp.NewServer(engine)
	if err := srv.ServeStdio(); err != nil {
		log.Fatal(err)
	}
*/
package chillmcp
