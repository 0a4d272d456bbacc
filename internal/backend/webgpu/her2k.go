package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/veriblas/veriblas/blas"
)

// Her2k computes the Hermitian rank-2k update of C on the GPU. One thread per
// element of the stored triangle; the untouched triangle survives readback
// because the whole C panel round-trips through the device buffer.
func (b *Backend) Her2k(uplo blas.Uplo, trans blas.Transpose, n, k int, alpha complex64, a []complex64, lda int, bb []complex64, ldb int, beta float32, c []complex64, ldc int) error {
	if !uplo.Valid() {
		return fmt.Errorf("webgpu: her2k uplo %q: %w", byte(uplo), blas.ErrInvalidValue)
	}
	if trans != blas.NoTrans && trans != blas.ConjTrans {
		return fmt.Errorf("webgpu: her2k trans %q: %w", byte(trans), blas.ErrInvalidValue)
	}
	rows, cols := n, k
	if trans == blas.ConjTrans {
		rows, cols = k, n
	}
	if n < 0 || k < 0 || ldc < max(1, n) || lda < max(1, rows) || ldb < max(1, rows) {
		return fmt.Errorf("webgpu: her2k n=%d k=%d lda=%d ldb=%d ldc=%d: %w", n, k, lda, ldb, ldc, blas.ErrInvalidValue)
	}

	if n == 0 || ((alpha == 0 || k == 0) && beta == 1) {
		return nil
	}

	sizeAB := 0
	if cols > 0 {
		sizeAB = lda*(cols-1) + rows
		if len(a) < sizeAB || len(bb) < ldb*(cols-1)+rows {
			return fmt.Errorf("webgpu: her2k operand too short: %w", blas.ErrInvalidValue)
		}
	}
	sizeC := ldc*(n-1) + n
	if len(c) < sizeC {
		return fmt.Errorf("webgpu: her2k c too short: %w", blas.ErrInvalidValue)
	}

	shader := b.compileShader("her2k", her2kShader)
	pipeline := b.getOrCreatePipeline("her2k", shader)

	// k == 0 still needs the beta scale, but leaves no operand data to
	// upload; bind a one-element placeholder so the layout stays uniform.
	aData, bData := a[:sizeAB], bb[:min(len(bb), ldb*(cols-1)+rows)]
	if sizeAB == 0 {
		aData = make([]complex64, 1)
		bData = aData
	}

	bufferA := b.createBuffer(c64Bytes(aData), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferA.Release()
	bufferB := b.createBuffer(c64Bytes(bData), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferB.Release()
	bufferC := b.createBuffer(c64Bytes(c[:sizeC]), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc|wgpu.BufferUsageCopyDst)
	defer bufferC.Release()

	params := make([]byte, 48)
	//nolint:gosec // G115: dimensions validated non-negative above
	binary.LittleEndian.PutUint32(params[0:4], uint32(n))
	//nolint:gosec // G115: dimensions validated non-negative above
	binary.LittleEndian.PutUint32(params[4:8], uint32(k))
	//nolint:gosec // G115: dimensions validated non-negative above
	binary.LittleEndian.PutUint32(params[8:12], uint32(lda))
	//nolint:gosec // G115: dimensions validated non-negative above
	binary.LittleEndian.PutUint32(params[12:16], uint32(ldb))
	//nolint:gosec // G115: dimensions validated non-negative above
	binary.LittleEndian.PutUint32(params[16:20], uint32(ldc))
	binary.LittleEndian.PutUint32(params[20:24], uploCode(uplo))
	binary.LittleEndian.PutUint32(params[24:28], transCode(trans))
	binary.LittleEndian.PutUint32(params[28:32], math.Float32bits(beta))
	// alpha as vec2<f32>, 8-byte aligned at offset 32.
	binary.LittleEndian.PutUint32(params[32:36], math.Float32bits(real(alpha)))
	binary.LittleEndian.PutUint32(params[36:40], math.Float32bits(imag(alpha)))
	bufferParams := b.createUniformBuffer(params)
	defer bufferParams.Release()

	cSize := uint64(sizeC * 8)
	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferA, 0, uint64(len(aData)*8)),
		wgpu.BufferBindingEntry(1, bufferB, 0, uint64(len(bData)*8)),
		wgpu.BufferBindingEntry(2, bufferC, 0, cSize),
		wgpu.BufferBindingEntry(3, bufferParams, 0, 48),
	})
	defer bindGroup.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)
	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)
	//nolint:gosec // G115: workgroup count is non-negative
	workgroups := uint32((n + tileDim - 1) / tileDim)
	computePass.DispatchWorkgroups(workgroups, workgroups, 1)
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	resultData, err := b.readBuffer(bufferC, cSize)
	if err != nil {
		return fmt.Errorf("webgpu: her2k readback: %w", blas.ErrExecutionFailed)
	}
	copy(c[:sizeC], bytesC64(resultData))
	return nil
}

func transCode(trans blas.Transpose) uint32 {
	if trans == blas.ConjTrans {
		return 1
	}
	return 0
}
