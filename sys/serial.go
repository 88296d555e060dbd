package sys

// Serial is the contract a serial peripheral must satisfy to serve as a
// redirection backend. Write and Read are synchronous; HasData allows a read
// handler to avoid blocking on an empty line.
type Serial interface {
	Write(p []byte) (int, error)
	Read(p []byte) (int, error)
	HasData() bool
}

// AddSerial derives a write and a read handler from port and registers both
// on r. The write handler reports full-length success regardless of the
// port's own result; the read handler reports 0 while the port has no data.
// The port must outlive the registry.
func AddSerial(r Registry, port Serial) error {
	err := r.AddWriter(func(fd int, p []byte) int {
		port.Write(p)
		return len(p)
	})
	if err != nil {
		return err
	}
	return r.AddReader(func(fd int, p []byte) int {
		if !port.HasData() {
			return 0
		}
		n, _ := port.Read(p)
		return n
	})
}
