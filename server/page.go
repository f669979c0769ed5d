package server

import "fmt"

// statsPage is the only page this server serves, whatever the request says.
// Two substitutions: total memory and used memory, both decimal kB.
const statsPage = `<html>
    <head>
        <meta charset="UTF-8">
        <title>Unikernel Stats</title>
    </head>
    <body>
        <h1>Hello, Unikernel World!</h1>
        <p>Here are some system stats:</p>
        <ul>
            <li><strong>Total Memory:</strong> %d kB</li>
            <li><strong>Used Memory:</strong> %d kB</li>
        </ul>
    </body>
</html>
`

// RenderStatsPage renders the stats page with the given memory readings
func RenderStatsPage(totalKB, usedKB uint64) []byte {
	return []byte(fmt.Sprintf(statsPage, totalKB, usedKB))
}
