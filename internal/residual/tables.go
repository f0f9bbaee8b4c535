package residual

import "github.com/deepteams/vvc/internal/cabac"

// Initialisation values of the residual coding contexts, one row per
// initType. Each entry is an (initValue, shiftIdx) pair.

var lastXInit = [NumInitTypes][numLastCtx]cabac.InitValue{
	{
		{Value: 13, Shift: 8}, {Value: 5, Shift: 5}, {Value: 4, Shift: 4}, {Value: 21, Shift: 5}, {Value: 14, Shift: 4}, {Value: 4, Shift: 4}, {Value: 6, Shift: 5}, {Value: 14, Shift: 4}, {Value: 21, Shift: 1}, {Value: 11, Shift: 0},
		{Value: 14, Shift: 4}, {Value: 7, Shift: 1}, {Value: 14, Shift: 0}, {Value: 5, Shift: 0}, {Value: 11, Shift: 0}, {Value: 21, Shift: 0}, {Value: 30, Shift: 1}, {Value: 22, Shift: 0}, {Value: 13, Shift: 0},
		{Value: 42, Shift: 0}, {Value: 12, Shift: 5}, {Value: 4, Shift: 4}, {Value: 3, Shift: 4},
	},
	{
		{Value: 6, Shift: 8}, {Value: 13, Shift: 5}, {Value: 12, Shift: 4}, {Value: 6, Shift: 5}, {Value: 6, Shift: 4}, {Value: 12, Shift: 4}, {Value: 14, Shift: 5}, {Value: 14, Shift: 4}, {Value: 13, Shift: 1},
		{Value: 12, Shift: 0}, {Value: 29, Shift: 4}, {Value: 7, Shift: 1}, {Value: 6, Shift: 0}, {Value: 13, Shift: 0}, {Value: 36, Shift: 0}, {Value: 28, Shift: 0}, {Value: 14, Shift: 1}, {Value: 13, Shift: 0},
		{Value: 5, Shift: 0}, {Value: 26, Shift: 0}, {Value: 12, Shift: 5}, {Value: 4, Shift: 4}, {Value: 18, Shift: 4},
	},
	{
		{Value: 6, Shift: 8}, {Value: 6, Shift: 5}, {Value: 12, Shift: 4}, {Value: 14, Shift: 5}, {Value: 6, Shift: 4}, {Value: 4, Shift: 4}, {Value: 14, Shift: 5}, {Value: 7, Shift: 4}, {Value: 6, Shift: 1}, {Value: 4, Shift: 0},
		{Value: 29, Shift: 4}, {Value: 7, Shift: 1}, {Value: 6, Shift: 0}, {Value: 6, Shift: 0}, {Value: 12, Shift: 0}, {Value: 28, Shift: 0}, {Value: 7, Shift: 1}, {Value: 13, Shift: 0}, {Value: 13, Shift: 0}, {Value: 35, Shift: 0},
		{Value: 19, Shift: 5}, {Value: 5, Shift: 4}, {Value: 4, Shift: 4},
	},
}

var lastYInit = [NumInitTypes][numLastCtx]cabac.InitValue{
	{
		{Value: 13, Shift: 8}, {Value: 5, Shift: 5}, {Value: 4, Shift: 8}, {Value: 6, Shift: 5}, {Value: 13, Shift: 5}, {Value: 11, Shift: 4}, {Value: 14, Shift: 5}, {Value: 6, Shift: 5}, {Value: 5, Shift: 4}, {Value: 3, Shift: 0},
		{Value: 14, Shift: 5}, {Value: 22, Shift: 4}, {Value: 6, Shift: 1}, {Value: 4, Shift: 0}, {Value: 3, Shift: 0}, {Value: 6, Shift: 1}, {Value: 22, Shift: 4}, {Value: 29, Shift: 0}, {Value: 20, Shift: 0}, {Value: 34, Shift: 0},
		{Value: 12, Shift: 6}, {Value: 4, Shift: 5}, {Value: 3, Shift: 5},
	},
	{
		{Value: 5, Shift: 8}, {Value: 5, Shift: 5}, {Value: 12, Shift: 8}, {Value: 6, Shift: 5}, {Value: 6, Shift: 5}, {Value: 4, Shift: 4}, {Value: 6, Shift: 5}, {Value: 14, Shift: 5}, {Value: 5, Shift: 4}, {Value: 12, Shift: 0},
		{Value: 14, Shift: 5}, {Value: 7, Shift: 4}, {Value: 13, Shift: 1}, {Value: 5, Shift: 0}, {Value: 13, Shift: 0}, {Value: 21, Shift: 1}, {Value: 14, Shift: 4}, {Value: 20, Shift: 0}, {Value: 12, Shift: 0},
		{Value: 34, Shift: 0}, {Value: 11, Shift: 6}, {Value: 4, Shift: 5}, {Value: 18, Shift: 5},
	},
	{
		{Value: 5, Shift: 8}, {Value: 5, Shift: 5}, {Value: 20, Shift: 8}, {Value: 13, Shift: 5}, {Value: 13, Shift: 5}, {Value: 19, Shift: 4}, {Value: 21, Shift: 5}, {Value: 6, Shift: 5}, {Value: 12, Shift: 4},
		{Value: 12, Shift: 0}, {Value: 14, Shift: 5}, {Value: 14, Shift: 4}, {Value: 5, Shift: 1}, {Value: 4, Shift: 0}, {Value: 12, Shift: 0}, {Value: 13, Shift: 1}, {Value: 7, Shift: 4}, {Value: 13, Shift: 0},
		{Value: 12, Shift: 0}, {Value: 41, Shift: 0}, {Value: 11, Shift: 6}, {Value: 5, Shift: 5}, {Value: 27, Shift: 5},
	},
}

var csbfInit = [NumInitTypes][numCSBFCtx]cabac.InitValue{
	{
		{Value: 18, Shift: 5}, {Value: 31, Shift: 5}, {Value: 25, Shift: 8}, {Value: 15, Shift: 8}, {Value: 18, Shift: 5}, {Value: 20, Shift: 5}, {Value: 38, Shift: 8}, {Value: 25, Shift: 8},
	},
	{
		{Value: 25, Shift: 5}, {Value: 45, Shift: 5}, {Value: 25, Shift: 8}, {Value: 14, Shift: 8}, {Value: 18, Shift: 5}, {Value: 35, Shift: 5}, {Value: 45, Shift: 8}, {Value: 25, Shift: 8},
	},
	{
		{Value: 25, Shift: 5}, {Value: 30, Shift: 5}, {Value: 25, Shift: 8}, {Value: 45, Shift: 8}, {Value: 18, Shift: 5}, {Value: 12, Shift: 5}, {Value: 29, Shift: 8}, {Value: 25, Shift: 8},
	},
}

var sigInit = [NumInitTypes][numSigCtx]cabac.InitValue{
	{
		{Value: 25, Shift: 12}, {Value: 19, Shift: 9}, {Value: 28, Shift: 9}, {Value: 14, Shift: 10}, {Value: 25, Shift: 9}, {Value: 20, Shift: 9}, {Value: 29, Shift: 9}, {Value: 30, Shift: 10}, {Value: 19, Shift: 8},
		{Value: 37, Shift: 8}, {Value: 30, Shift: 8}, {Value: 38, Shift: 10}, {Value: 11, Shift: 9}, {Value: 38, Shift: 13}, {Value: 46, Shift: 8}, {Value: 54, Shift: 8}, {Value: 27, Shift: 8}, {Value: 39, Shift: 8},
		{Value: 39, Shift: 8}, {Value: 39, Shift: 5}, {Value: 44, Shift: 8}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 18, Shift: 8}, {Value: 39, Shift: 8}, {Value: 39, Shift: 8},
		{Value: 39, Shift: 8}, {Value: 27, Shift: 8}, {Value: 39, Shift: 0}, {Value: 39, Shift: 4}, {Value: 39, Shift: 4}, {Value: 0, Shift: 0}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0},
		{Value: 25, Shift: 12}, {Value: 27, Shift: 12}, {Value: 28, Shift: 9}, {Value: 37, Shift: 13}, {Value: 34, Shift: 4}, {Value: 53, Shift: 5}, {Value: 53, Shift: 8}, {Value: 46, Shift: 9}, {Value: 19, Shift: 8},
		{Value: 46, Shift: 12}, {Value: 38, Shift: 12}, {Value: 39, Shift: 8}, {Value: 52, Shift: 4}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 11, Shift: 8}, {Value: 39, Shift: 8},
		{Value: 39, Shift: 8}, {Value: 39, Shift: 8}, {Value: 19, Shift: 4}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 25, Shift: 13}, {Value: 28, Shift: 13}, {Value: 38, Shift: 8},
	},
	{
		{Value: 17, Shift: 12}, {Value: 41, Shift: 9}, {Value: 42, Shift: 9}, {Value: 29, Shift: 10}, {Value: 25, Shift: 9}, {Value: 49, Shift: 9}, {Value: 43, Shift: 9}, {Value: 37, Shift: 10}, {Value: 33, Shift: 8},
		{Value: 58, Shift: 8}, {Value: 51, Shift: 8}, {Value: 30, Shift: 10}, {Value: 19, Shift: 9}, {Value: 38, Shift: 13}, {Value: 38, Shift: 8}, {Value: 46, Shift: 8}, {Value: 34, Shift: 8}, {Value: 54, Shift: 8},
		{Value: 54, Shift: 8}, {Value: 39, Shift: 5}, {Value: 6, Shift: 8}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 19, Shift: 8}, {Value: 39, Shift: 8}, {Value: 54, Shift: 8},
		{Value: 39, Shift: 8}, {Value: 19, Shift: 8}, {Value: 39, Shift: 0}, {Value: 39, Shift: 4}, {Value: 39, Shift: 4}, {Value: 56, Shift: 0}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0},
		{Value: 17, Shift: 12}, {Value: 34, Shift: 12}, {Value: 35, Shift: 9}, {Value: 21, Shift: 13}, {Value: 41, Shift: 4}, {Value: 59, Shift: 5}, {Value: 60, Shift: 8}, {Value: 38, Shift: 9}, {Value: 35, Shift: 8},
		{Value: 45, Shift: 12}, {Value: 53, Shift: 12}, {Value: 54, Shift: 8}, {Value: 44, Shift: 4}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 34, Shift: 8}, {Value: 38, Shift: 8},
		{Value: 62, Shift: 8}, {Value: 39, Shift: 8}, {Value: 26, Shift: 4}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 40, Shift: 13}, {Value: 35, Shift: 13}, {Value: 44, Shift: 8},
	},
	{
		{Value: 17, Shift: 12}, {Value: 41, Shift: 9}, {Value: 49, Shift: 9}, {Value: 36, Shift: 10}, {Value: 1, Shift: 9}, {Value: 49, Shift: 9}, {Value: 50, Shift: 9}, {Value: 37, Shift: 10}, {Value: 48, Shift: 8},
		{Value: 51, Shift: 8}, {Value: 58, Shift: 8}, {Value: 45, Shift: 10}, {Value: 26, Shift: 9}, {Value: 45, Shift: 13}, {Value: 53, Shift: 8}, {Value: 46, Shift: 8}, {Value: 49, Shift: 8}, {Value: 54, Shift: 8},
		{Value: 61, Shift: 8}, {Value: 39, Shift: 5}, {Value: 35, Shift: 8}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 19, Shift: 8}, {Value: 54, Shift: 8}, {Value: 39, Shift: 8},
		{Value: 39, Shift: 8}, {Value: 50, Shift: 8}, {Value: 39, Shift: 0}, {Value: 39, Shift: 4}, {Value: 39, Shift: 4}, {Value: 0, Shift: 0}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0},
		{Value: 9, Shift: 12}, {Value: 49, Shift: 12}, {Value: 50, Shift: 9}, {Value: 36, Shift: 13}, {Value: 48, Shift: 4}, {Value: 59, Shift: 5}, {Value: 59, Shift: 8}, {Value: 38, Shift: 9}, {Value: 34, Shift: 8},
		{Value: 45, Shift: 12}, {Value: 38, Shift: 12}, {Value: 31, Shift: 8}, {Value: 58, Shift: 4}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 34, Shift: 8}, {Value: 38, Shift: 8},
		{Value: 54, Shift: 8}, {Value: 39, Shift: 8}, {Value: 41, Shift: 4}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 39, Shift: 0}, {Value: 25, Shift: 13}, {Value: 50, Shift: 13}, {Value: 37, Shift: 8},
	},
}

var parInit = [NumInitTypes][numParCtx]cabac.InitValue{
	{
		{Value: 33, Shift: 8}, {Value: 25, Shift: 9}, {Value: 18, Shift: 12}, {Value: 26, Shift: 13}, {Value: 34, Shift: 13}, {Value: 27, Shift: 13}, {Value: 25, Shift: 10}, {Value: 26, Shift: 13},
		{Value: 19, Shift: 13}, {Value: 42, Shift: 13}, {Value: 35, Shift: 13}, {Value: 33, Shift: 13}, {Value: 19, Shift: 13}, {Value: 27, Shift: 13}, {Value: 35, Shift: 13}, {Value: 35, Shift: 13},
		{Value: 34, Shift: 10}, {Value: 42, Shift: 13}, {Value: 20, Shift: 13}, {Value: 43, Shift: 13}, {Value: 20, Shift: 13}, {Value: 33, Shift: 8}, {Value: 25, Shift: 12}, {Value: 26, Shift: 12},
		{Value: 42, Shift: 12}, {Value: 19, Shift: 13}, {Value: 27, Shift: 13}, {Value: 26, Shift: 13}, {Value: 50, Shift: 13}, {Value: 35, Shift: 13}, {Value: 20, Shift: 13}, {Value: 43, Shift: 13},
		{Value: 11, Shift: 6},
	},
	{
		{Value: 18, Shift: 8}, {Value: 17, Shift: 9}, {Value: 33, Shift: 12}, {Value: 18, Shift: 13}, {Value: 26, Shift: 13}, {Value: 42, Shift: 13}, {Value: 25, Shift: 10}, {Value: 33, Shift: 13},
		{Value: 26, Shift: 13}, {Value: 42, Shift: 13}, {Value: 27, Shift: 13}, {Value: 25, Shift: 13}, {Value: 34, Shift: 13}, {Value: 42, Shift: 13}, {Value: 42, Shift: 13}, {Value: 35, Shift: 13},
		{Value: 26, Shift: 10}, {Value: 27, Shift: 13}, {Value: 42, Shift: 13}, {Value: 20, Shift: 13}, {Value: 20, Shift: 13}, {Value: 25, Shift: 8}, {Value: 25, Shift: 12}, {Value: 26, Shift: 12},
		{Value: 11, Shift: 12}, {Value: 19, Shift: 13}, {Value: 27, Shift: 13}, {Value: 33, Shift: 13}, {Value: 42, Shift: 13}, {Value: 35, Shift: 13}, {Value: 35, Shift: 13}, {Value: 43, Shift: 13},
		{Value: 3, Shift: 6},
	},
	{
		{Value: 33, Shift: 8}, {Value: 40, Shift: 9}, {Value: 25, Shift: 12}, {Value: 41, Shift: 13}, {Value: 26, Shift: 13}, {Value: 42, Shift: 13}, {Value: 25, Shift: 10}, {Value: 33, Shift: 13},
		{Value: 26, Shift: 13}, {Value: 34, Shift: 13}, {Value: 27, Shift: 13}, {Value: 25, Shift: 13}, {Value: 41, Shift: 13}, {Value: 42, Shift: 13}, {Value: 42, Shift: 13}, {Value: 35, Shift: 13},
		{Value: 33, Shift: 10}, {Value: 27, Shift: 13}, {Value: 35, Shift: 13}, {Value: 42, Shift: 13}, {Value: 43, Shift: 13}, {Value: 33, Shift: 8}, {Value: 25, Shift: 12}, {Value: 26, Shift: 12},
		{Value: 34, Shift: 12}, {Value: 19, Shift: 13}, {Value: 27, Shift: 13}, {Value: 33, Shift: 13}, {Value: 42, Shift: 13}, {Value: 43, Shift: 13}, {Value: 35, Shift: 13}, {Value: 43, Shift: 13},
		{Value: 11, Shift: 6},
	},
}

var gtxInit = [NumInitTypes][numGtxCtx]cabac.InitValue{
	{
		{Value: 25, Shift: 9}, {Value: 25, Shift: 5}, {Value: 11, Shift: 10}, {Value: 27, Shift: 13}, {Value: 20, Shift: 13}, {Value: 21, Shift: 10}, {Value: 33, Shift: 9}, {Value: 12, Shift: 10},
		{Value: 28, Shift: 13}, {Value: 21, Shift: 13}, {Value: 22, Shift: 13}, {Value: 34, Shift: 9}, {Value: 28, Shift: 10}, {Value: 29, Shift: 10}, {Value: 29, Shift: 10}, {Value: 30, Shift: 13},
		{Value: 36, Shift: 13}, {Value: 29, Shift: 13}, {Value: 45, Shift: 9}, {Value: 30, Shift: 10}, {Value: 23, Shift: 10}, {Value: 40, Shift: 10}, {Value: 33, Shift: 13}, {Value: 27, Shift: 8},
		{Value: 28, Shift: 9}, {Value: 21, Shift: 10}, {Value: 37, Shift: 10}, {Value: 36, Shift: 13}, {Value: 37, Shift: 13}, {Value: 45, Shift: 13}, {Value: 38, Shift: 13}, {Value: 46, Shift: 13},
		{Value: 25, Shift: 9}, {Value: 1, Shift: 9}, {Value: 40, Shift: 9}, {Value: 25, Shift: 10}, {Value: 33, Shift: 10}, {Value: 11, Shift: 13}, {Value: 17, Shift: 13}, {Value: 25, Shift: 13}, {Value: 25, Shift: 13},
		{Value: 18, Shift: 13}, {Value: 4, Shift: 9}, {Value: 17, Shift: 9}, {Value: 33, Shift: 10}, {Value: 26, Shift: 10}, {Value: 19, Shift: 13}, {Value: 13, Shift: 13}, {Value: 33, Shift: 10},
		{Value: 19, Shift: 13}, {Value: 20, Shift: 13}, {Value: 28, Shift: 13}, {Value: 22, Shift: 13}, {Value: 40, Shift: 13}, {Value: 9, Shift: 9}, {Value: 25, Shift: 9}, {Value: 18, Shift: 10},
		{Value: 26, Shift: 10}, {Value: 35, Shift: 13}, {Value: 25, Shift: 13}, {Value: 26, Shift: 13}, {Value: 35, Shift: 13}, {Value: 28, Shift: 13}, {Value: 37, Shift: 13}, {Value: 11, Shift: 8},
		{Value: 5, Shift: 9}, {Value: 5, Shift: 10}, {Value: 14, Shift: 10}, {Value: 10, Shift: 13}, {Value: 3, Shift: 8}, {Value: 3, Shift: 8}, {Value: 3, Shift: 9},
	},
	{
		{Value: 0, Shift: 9}, {Value: 17, Shift: 5}, {Value: 26, Shift: 10}, {Value: 19, Shift: 13}, {Value: 35, Shift: 13}, {Value: 21, Shift: 10}, {Value: 25, Shift: 9}, {Value: 34, Shift: 10}, {Value: 20, Shift: 13},
		{Value: 28, Shift: 13}, {Value: 29, Shift: 13}, {Value: 33, Shift: 9}, {Value: 27, Shift: 10}, {Value: 28, Shift: 10}, {Value: 29, Shift: 10}, {Value: 22, Shift: 13}, {Value: 34, Shift: 13},
		{Value: 28, Shift: 13}, {Value: 44, Shift: 9}, {Value: 37, Shift: 10}, {Value: 38, Shift: 10}, {Value: 0, Shift: 10}, {Value: 25, Shift: 13}, {Value: 19, Shift: 8}, {Value: 20, Shift: 9}, {Value: 13, Shift: 10},
		{Value: 14, Shift: 10}, {Value: 57, Shift: 13}, {Value: 44, Shift: 13}, {Value: 30, Shift: 13}, {Value: 30, Shift: 13}, {Value: 23, Shift: 13}, {Value: 17, Shift: 9}, {Value: 0, Shift: 9}, {Value: 1, Shift: 9},
		{Value: 17, Shift: 10}, {Value: 25, Shift: 10}, {Value: 18, Shift: 13}, {Value: 0, Shift: 13}, {Value: 9, Shift: 13}, {Value: 25, Shift: 13}, {Value: 33, Shift: 13}, {Value: 34, Shift: 9}, {Value: 9, Shift: 9},
		{Value: 25, Shift: 10}, {Value: 18, Shift: 10}, {Value: 26, Shift: 13}, {Value: 20, Shift: 13}, {Value: 25, Shift: 10}, {Value: 18, Shift: 13}, {Value: 19, Shift: 13}, {Value: 27, Shift: 13},
		{Value: 29, Shift: 13}, {Value: 17, Shift: 13}, {Value: 9, Shift: 9}, {Value: 25, Shift: 9}, {Value: 10, Shift: 10}, {Value: 18, Shift: 10}, {Value: 4, Shift: 13}, {Value: 17, Shift: 13}, {Value: 33, Shift: 13},
		{Value: 19, Shift: 13}, {Value: 20, Shift: 13}, {Value: 29, Shift: 13}, {Value: 18, Shift: 8}, {Value: 11, Shift: 9}, {Value: 4, Shift: 10}, {Value: 28, Shift: 10}, {Value: 2, Shift: 13}, {Value: 10, Shift: 8},
		{Value: 3, Shift: 8}, {Value: 3, Shift: 9},
	},
	{
		{Value: 0, Shift: 9}, {Value: 0, Shift: 5}, {Value: 33, Shift: 10}, {Value: 34, Shift: 13}, {Value: 35, Shift: 13}, {Value: 21, Shift: 10}, {Value: 25, Shift: 9}, {Value: 34, Shift: 10}, {Value: 35, Shift: 13},
		{Value: 28, Shift: 13}, {Value: 29, Shift: 13}, {Value: 40, Shift: 9}, {Value: 42, Shift: 10}, {Value: 43, Shift: 10}, {Value: 29, Shift: 10}, {Value: 30, Shift: 13}, {Value: 49, Shift: 13},
		{Value: 36, Shift: 13}, {Value: 37, Shift: 9}, {Value: 45, Shift: 10}, {Value: 38, Shift: 10}, {Value: 0, Shift: 10}, {Value: 40, Shift: 13}, {Value: 34, Shift: 8}, {Value: 43, Shift: 9}, {Value: 36, Shift: 10},
		{Value: 37, Shift: 10}, {Value: 57, Shift: 13}, {Value: 52, Shift: 13}, {Value: 45, Shift: 13}, {Value: 38, Shift: 13}, {Value: 46, Shift: 13}, {Value: 25, Shift: 9}, {Value: 0, Shift: 9}, {Value: 0, Shift: 9},
		{Value: 17, Shift: 10}, {Value: 25, Shift: 10}, {Value: 26, Shift: 13}, {Value: 0, Shift: 13}, {Value: 9, Shift: 13}, {Value: 25, Shift: 13}, {Value: 33, Shift: 13}, {Value: 19, Shift: 9}, {Value: 0, Shift: 9},
		{Value: 25, Shift: 10}, {Value: 33, Shift: 10}, {Value: 26, Shift: 13}, {Value: 20, Shift: 13}, {Value: 25, Shift: 10}, {Value: 33, Shift: 13}, {Value: 27, Shift: 13}, {Value: 35, Shift: 13},
		{Value: 22, Shift: 13}, {Value: 25, Shift: 13}, {Value: 1, Shift: 9}, {Value: 25, Shift: 9}, {Value: 33, Shift: 10}, {Value: 26, Shift: 10}, {Value: 12, Shift: 13}, {Value: 25, Shift: 13},
		{Value: 33, Shift: 13}, {Value: 27, Shift: 13}, {Value: 28, Shift: 13}, {Value: 37, Shift: 13}, {Value: 19, Shift: 8}, {Value: 11, Shift: 9}, {Value: 4, Shift: 10}, {Value: 6, Shift: 10}, {Value: 3, Shift: 13},
		{Value: 4, Shift: 8}, {Value: 4, Shift: 8}, {Value: 5, Shift: 9},
	},
}

var signTSInit = [NumInitTypes][numSignTSCtx]cabac.InitValue{
	{
		{Value: 12, Shift: 1}, {Value: 17, Shift: 4}, {Value: 46, Shift: 4}, {Value: 28, Shift: 5}, {Value: 25, Shift: 8}, {Value: 46, Shift: 8},
	},
	{
		{Value: 5, Shift: 1}, {Value: 10, Shift: 4}, {Value: 53, Shift: 4}, {Value: 43, Shift: 5}, {Value: 25, Shift: 8}, {Value: 46, Shift: 8},
	},
	{
		{Value: 35, Shift: 1}, {Value: 25, Shift: 4}, {Value: 46, Shift: 4}, {Value: 28, Shift: 5}, {Value: 33, Shift: 8}, {Value: 38, Shift: 8},
	},
}
