package server

import (
	"log"
	"net"
	"runtime/debug"

	"github.com/adgsenpai/static-web-unikernel/sysinfo"
)

// handleConnection runs the whole lifetime of one connection: a single
// best-effort read, then a single response write. A failed read does not
// stop the write phase; a client that sends nothing still gets the page.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	defer func() {
		if err := recover(); err != nil {
			log.Printf("PANIC recovered: %v\n%s", err, debug.Stack())
		}
	}()

	remote := conn.RemoteAddr().String()

	// Read phase. One read into a fixed buffer; the bytes are only ever
	// used for diagnostics, never parsed.
	bufPtr := requestBufferPool.Get().(*[]byte)
	buffer := *bufPtr

	n, err := conn.Read(buffer)
	if err != nil {
		logError(remote, "read", err)
	} else if s.config.EnableLogging {
		log.Printf("%s request:\n%s", remote, buffer[:n])
	}
	requestBufferPool.Put(bufPtr)

	// Write phase. Fresh memory snapshot per request, full response
	// assembled up front, one write.
	totalKB, usedKB := sysinfo.Snapshot()
	response := BuildResponse(RenderStatsPage(totalKB, usedKB))

	if _, err := conn.Write(response); err != nil {
		logError(remote, "write", err)
		return
	}

	if s.config.EnableLogging {
		logServed(remote, n)
	}
}
