package server

// dashboardHTML is the single-page dashboard served at "/". It renders the
// tagged JSON stream from /ws: live prices, the trade history, the
// portfolio, and the latest indicator snapshot per symbol.
const dashboardHTML = `<!DOCTYPE html>
<html>
    <head>
        <title>Trading Bot Dashboard</title>
        <style>
            body { font-family: Arial, sans-serif; margin: 20px; }
            .container { display: flex; flex-wrap: wrap; }
            .panel { margin: 10px; padding: 15px; border: 1px solid #ddd; border-radius: 5px; }
            #prices { width: 22%; }
            #trades { width: 38%; }
            #portfolio { width: 28%; }
            #indicators { width: 94%; font-size: 0.85em; }
            .success { color: green; }
            .error { color: red; }
            .up { color: green; }
            .down { color: red; }
        </style>
    </head>
    <body>
        <h1>Automated Trading Bot</h1>
        <div class="container">
            <div id="prices" class="panel">
                <h2>Current Prices</h2>
                <div id="price-data"></div>
            </div>
            <div id="trades" class="panel">
                <h2>Trade History</h2>
                <div id="trade-data"></div>
            </div>
            <div id="portfolio" class="panel">
                <h2>Portfolio</h2>
                <div id="portfolio-data"></div>
            </div>
            <div id="indicators" class="panel">
                <h2>Indicators</h2>
                <div id="indicator-data"></div>
            </div>
        </div>
        <script>
            const ws = new WebSocket((location.protocol === 'https:' ? 'wss://' : 'ws://') + window.location.host + '/ws');
            ws.onmessage = (event) => {
                const data = JSON.parse(event.data);
                if (data.type === 'prices') {
                    document.getElementById('price-data').innerHTML =
                        data.prices.map(p => {
                            const cls = p.change >= 0 ? 'up' : 'down';
                            return p.symbol + ': $' + p.price.toFixed(2) +
                                ' <span class="' + cls + '">(' + p.change.toFixed(2) + '%)</span>';
                        }).join('<br>');
                }
                if (data.type === 'trade') {
                    const trade = data.trade;
                    const statusClass = trade.status === 'EXECUTED' ? 'success' : 'error';
                    const pl = trade.realized_pl !== undefined ? ' P&L: $' + trade.realized_pl.toFixed(2) : '';
                    document.getElementById('trade-data').innerHTML =
                        '[' + trade.time + '] ' + trade.action + ' ' + trade.quantity + ' ' +
                        trade.symbol + ' @ $' + trade.price.toFixed(2) +
                        ' <span class="' + statusClass + '">' + trade.status + '</span>' + pl + '<br>' +
                        document.getElementById('trade-data').innerHTML;
                }
                if (data.type === 'portfolio') {
                    document.getElementById('portfolio-data').innerHTML =
                        'Balance: $' + data.balance.toFixed(2) + '<br>' +
                        'Equity: $' + data.equity.toFixed(2) + '<br>' +
                        data.portfolio.map(p =>
                            p.symbol + ': ' + p.quantity + ' shares @ $' + p.avg_cost.toFixed(2)
                        ).join('<br>');
                }
                if (data.type === 'indicators') {
                    document.getElementById('indicator-data').innerHTML =
                        Object.entries(data.indicators).map(([sym, ind]) =>
                            sym + ' | RSI ' + ind.rsi.toFixed(2) +
                            ' | MACD ' + ind.macd.toFixed(2) +
                            ' | EMA ' + ind.ema_fast.toFixed(2) + '/' + ind.ema_slow.toFixed(2) +
                            ' | BB ' + ind.boll_lower.toFixed(2) + '-' + ind.boll_upper.toFixed(2)
                        ).join('<br>');
                }
            };
        </script>
    </body>
</html>
`
